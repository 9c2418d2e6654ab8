// Package notifiers holds the order subscribers that live inside the process:
// the kitchen display, the customer notifier and the audit logger. It also
// defines the JSON event payload shared by the network sinks and the Isolate
// decorator that keeps a failing sink from aborting an order operation.
package notifiers

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"coffeeshop/internal/core/domain/model/order"
)

// formatter renders the text of one notification without its prefix.
type formatter func(o *order.Order, event order.Event) string

// lineWriter writes one prefixed line per event to a writer.
type lineWriter struct {
	mu     sync.Mutex
	out    io.Writer
	prefix string
	format formatter
}

func newLineWriter(out io.Writer, prefix string, format formatter) *lineWriter {
	if out == nil {
		out = os.Stdout
	}
	return &lineWriter{out: out, prefix: prefix, format: format}
}

func (w *lineWriter) Notify(_ context.Context, o *order.Order, event order.Event) error {
	line := fmt.Sprintf("%s %s\n", w.prefix, w.format(o, event))

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := io.WriteString(w.out, line); err != nil {
		return fmt.Errorf("%s write: %w", w.prefix, err)
	}
	return nil
}

// KitchenDisplay prints the orders the baristas have to prepare.
type KitchenDisplay struct {
	*lineWriter
}

// NewKitchenDisplay writes to out, or to stdout when out is nil.
//
// Example output:
//
//	[КУХНЯ] Новый заказ №1 создан.
//	[КУХНЯ] Заказ №1: статус готовится.
func NewKitchenDisplay(out io.Writer) *KitchenDisplay {
	return &KitchenDisplay{newLineWriter(out, "[КУХНЯ]", func(o *order.Order, event order.Event) string {
		switch event {
		case order.EventCreated:
			return fmt.Sprintf("Новый заказ №%d создан.", o.ID())
		case order.EventStatusChanged:
			return fmt.Sprintf("Заказ №%d: статус %s.", o.ID(), o.Status().Label())
		default:
			return fmt.Sprintf("Заказ №%d: событие %s.", o.ID(), event)
		}
	})}
}

// CustomerNotifier tells the customer about their order.
type CustomerNotifier struct {
	*lineWriter
}

// NewCustomerNotifier writes to out, or to stdout when out is nil.
//
// Example output:
//
//	[КЛИЕНТ] Ваш заказ №1 создан.
//	[КЛИЕНТ] Ваш заказ №1: готов.
func NewCustomerNotifier(out io.Writer) *CustomerNotifier {
	return &CustomerNotifier{newLineWriter(out, "[КЛИЕНТ]", func(o *order.Order, event order.Event) string {
		switch event {
		case order.EventCreated:
			return fmt.Sprintf("Ваш заказ №%d создан.", o.ID())
		case order.EventStatusChanged:
			return fmt.Sprintf("Ваш заказ №%d: %s.", o.ID(), o.Status().Label())
		default:
			return fmt.Sprintf("Обновление заказа №%d: %s.", o.ID(), event)
		}
	})}
}

// AuditLog keeps a plain-text trail of order events.
type AuditLog struct {
	*lineWriter
}

// NewAuditLog writes to out, or to stdout when out is nil.
//
// Example output:
//
//	[ЛОГ] Заказ №1 создан.
//	[ЛОГ] Статус заказа №1 изменен на оплачен.
func NewAuditLog(out io.Writer) *AuditLog {
	return &AuditLog{newLineWriter(out, "[ЛОГ]", func(o *order.Order, event order.Event) string {
		switch event {
		case order.EventCreated:
			return fmt.Sprintf("Заказ №%d создан.", o.ID())
		case order.EventStatusChanged:
			return fmt.Sprintf("Статус заказа №%d изменен на %s.", o.ID(), o.Status().Label())
		default:
			return fmt.Sprintf("Заказ №%d: событие %s.", o.ID(), event)
		}
	})}
}
