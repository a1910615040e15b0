package billing

import (
	"fmt"
	"time"
)

// Human-facing identifiers are a short prefix plus the last eight digits of
// the current wall-clock milliseconds, matching the receipt and invoice
// numbers staff already write on paper copies.

func timeSuffix() string {
	ms := fmt.Sprintf("%d", time.Now().UnixMilli())
	return ms[len(ms)-8:]
}

// NewInvoiceID generates a fee (invoice) id like "INV84921733".
func NewInvoiceID() string {
	return "INV" + timeSuffix()
}

// NewReceiptNumber generates a payment receipt number like "#RC84921733".
func NewReceiptNumber() string {
	return "#RC" + timeSuffix()
}

// NewStudentID generates a student id like "ST84921733".
func NewStudentID() string {
	return "ST" + timeSuffix()
}

// NewTeacherID generates a teacher id like "TCH84921733".
func NewTeacherID() string {
	return "TCH" + timeSuffix()
}
