package billing_test

import (
	"regexp"
	"testing"

	"gj-schools/app/billing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifierFormats(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^INV\d{8}$`), billing.NewInvoiceID())
	assert.Regexp(t, regexp.MustCompile(`^#RC\d{8}$`), billing.NewReceiptNumber())
	assert.Regexp(t, regexp.MustCompile(`^ST\d{8}$`), billing.NewStudentID())
	assert.Regexp(t, regexp.MustCompile(`^TCH\d{8}$`), billing.NewTeacherID())
}
