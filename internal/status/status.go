package status

import (
	"fmt"
	"strings"

	"github.com/dperaltab/tienda-admin/internal/customerror"
)

// Vocabulary selects the wording a status is rendered in. The canonical
// vocabulary is what the store service persists; the Spanish one is what the
// console's screens and form selects use.
type Vocabulary string

const (
	VocabCanonical Vocabulary = "en"
	VocabSpanish   Vocabulary = "es"
)

func Vocabularies() []Vocabulary {
	return []Vocabulary{VocabCanonical, VocabSpanish}
}

type entry struct {
	canonical string
	spanish   string
	aliases   []string
	label     string
}

// Dimension is one closed status vocabulary (order status, payment status,
// receipt status, payment method) with its alias table.
type Dimension struct {
	name    string
	entries []entry
	index   map[string]string
}

func newDimension(name string, entries []entry) *Dimension {
	d := &Dimension{name: name, entries: entries, index: make(map[string]string)}
	for _, e := range entries {
		d.index[strings.ToLower(e.canonical)] = e.canonical
		d.index[strings.ToLower(e.spanish)] = e.canonical
		for _, a := range e.aliases {
			d.index[strings.ToLower(a)] = e.canonical
		}
	}
	return d
}

// Canonical maps any known alias to its canonical code, case-insensitively.
// Unknown input is returned unchanged; this leniency is for display paths
// only. Write paths must go through CanonicalStrict.
func (d *Dimension) Canonical(input string) string {
	if c, ok := d.index[strings.ToLower(strings.TrimSpace(input))]; ok {
		return c
	}
	return input
}

// CanonicalStrict maps a known alias to its canonical code and rejects
// anything outside the closed enum.
func (d *Dimension) CanonicalStrict(input string) (string, error) {
	if c, ok := d.index[strings.ToLower(strings.TrimSpace(input))]; ok {
		return c, nil
	}
	return "", customerror.NewValidationError(fmt.Sprintf("unknown %s %q", d.name, input))
}

// LocaleAlias renders a canonical code in the target vocabulary. It is total
// over the closed enum; a non-canonical input falls back to itself.
func (d *Dimension) LocaleAlias(canonical string, v Vocabulary) string {
	for _, e := range d.entries {
		if e.canonical == canonical {
			if v == VocabSpanish {
				return e.spanish
			}
			return e.canonical
		}
	}
	return canonical
}

// DisplayLabel returns the human label for any known alias; unknown input is
// echoed back so a stray value still renders.
func (d *Dimension) DisplayLabel(input string) string {
	c := d.Canonical(input)
	for _, e := range d.entries {
		if e.canonical == c {
			return e.label
		}
	}
	return input
}

// Canonicals lists the closed enum in declaration order.
func (d *Dimension) Canonicals() []string {
	out := make([]string, 0, len(d.entries))
	for _, e := range d.entries {
		out = append(out, e.canonical)
	}
	return out
}

var (
	OrderStatuses = newDimension("order status", []entry{
		{"pending", "pendiente", nil, "Pendiente"},
		{"confirmed", "confirmado", []string{"confirmada"}, "Confirmada"},
		{"processing", "procesando", nil, "Procesando"},
		{"shipped", "enviado", []string{"enviada"}, "Enviada"},
		{"delivered", "entregado", []string{"entregada"}, "Entregada"},
		{"cancelled", "cancelado", []string{"cancelada", "canceled"}, "Cancelada"},
	})

	PaymentStatuses = newDimension("payment status", []entry{
		{"pending", "pendiente", nil, "Pendiente"},
		{"paid", "pagado", []string{"pagada"}, "Pagado"},
		{"failed", "fallido", []string{"fallida"}, "Fallido"},
		{"refunded", "reembolsado", []string{"reembolsada"}, "Reembolsado"},
	})

	// Receipt statuses are persisted in Spanish by the store service, so the
	// canonical code and the Spanish alias coincide.
	ReceiptStatuses = newDimension("receipt status", []entry{
		{"pendiente", "pendiente", []string{"pending"}, "Pendiente"},
		{"en_revision", "en_revision", []string{"en revisión", "in_review"}, "En Revisión"},
		{"aprobado", "aprobado", []string{"approved"}, "Aprobado"},
		{"rechazado", "rechazado", []string{"rejected"}, "Rechazado"},
	})

	PaymentMethods = newDimension("payment method", []entry{
		{"cash", "efectivo", nil, "Efectivo"},
		{"transfer", "transferencia", nil, "Transferencia"},
	})
)
