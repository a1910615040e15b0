package database_test

import (
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"gj-schools/app/billing"
	"gj-schools/app/database"
	"gj-schools/app/models"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDB connects to the database named by TEST_DATABASE_URL and ensures the
// schema exists. Tests using it are skipped when the variable is unset.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Ping())
	require.NoError(t, database.InitSchema(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestDeleteStudentCascade(t *testing.T) {
	db := testDB(t)

	cashier := &models.User{
		Name:     "Cascade Cashier",
		Email:    fmt.Sprintf("cascade-%d@example.com", time.Now().UnixNano()),
		Password: "not-a-real-hash",
		Role:     models.RoleAccountant,
	}
	require.NoError(t, database.CreateUser(db, cashier))

	class := "Grade 7C"
	student := &models.Student{Name: "Cascade Target", Class: &class}
	firstFee, err := database.CreateStudentWithInvoice(db, student)
	require.NoError(t, err)
	require.True(t, firstFee.Amount.Equal(mustDecimal(t, "1200.00")))

	secondFee := &models.Fee{
		ID:        fmt.Sprintf("INVT%d", time.Now().UnixNano()%100000000),
		StudentID: student.ID,
		Class:     &class,
		Amount:    mustDecimal(t, "300.00"),
		DueDate:   time.Now().AddDate(0, 1, 0),
	}
	require.NoError(t, database.CreateFee(db, secondFee))

	ledger := []struct {
		feeID  string
		amount string
	}{
		{firstFee.ID, "100.00"},
		{firstFee.ID, "200.00"},
		{secondFee.ID, "50.00"},
	}
	for _, entry := range ledger {
		payment := &models.Payment{FeeID: entry.feeID, Amount: mustDecimal(t, entry.amount)}
		_, err := database.RecordPayment(db, payment, cashier.ID)
		require.NoError(t, err)
	}

	deleted, err := database.DeleteStudentCascade(db, student.ID)
	require.NoError(t, err)
	assert.Equal(t, student.ID, deleted.ID)

	_, err = database.GetStudentByID(db, student.ID)
	assert.ErrorIs(t, err, billing.ErrStudentNotFound)
	_, err = database.GetFeeByID(db, firstFee.ID)
	assert.ErrorIs(t, err, billing.ErrFeeNotFound)
	_, err = database.GetFeeByID(db, secondFee.ID)
	assert.ErrorIs(t, err, billing.ErrFeeNotFound)

	payments, err := database.GetPaymentsByFeeIDs(db, []string{firstFee.ID, secondFee.ID})
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestDeleteStudentCascadeMissingStudent(t *testing.T) {
	db := testDB(t)

	_, err := database.DeleteStudentCascade(db, "ST00000000")
	assert.ErrorIs(t, err, billing.ErrStudentNotFound)
}
