package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestAddPaymentMethod(t *testing.T) {
	f := newFixture(t)
	payments := f.paymentService()
	ctx := context.Background()

	t.Run("admin adds a valid card", func(t *testing.T) {
		method, err := payments.Add(ctx, f.admin.ID, "4111111111111111", "Nick Fury", "12/99", true)
		require.NoError(t, err)
		assert.Equal(t, f.admin.ID, method.UserID)
		assert.True(t, method.IsDefault)
		assert.NotEmpty(t, method.ID)
	})

	t.Run("non-admins denied", func(t *testing.T) {
		_, err := payments.Add(ctx, f.managerIndia.ID, "4111111111111111", "M", "12/99", false)
		assert.ErrorIs(t, err, ErrAccessDenied)
		_, err = payments.Add(ctx, f.memberUS.ID, "4111111111111111", "M", "12/99", false)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("card number validation", func(t *testing.T) {
		for _, bad := range []string{"1234", "411111111111111", "41111111111111112", "4111-1111-1111-1111", "411111111111111a"} {
			_, err := payments.Add(ctx, f.admin.ID, bad, "N", "12/99", false)
			assert.ErrorIs(t, err, ErrInvalidInput, "card %q must be rejected", bad)
		}
	})

	t.Run("expiry validation", func(t *testing.T) {
		for _, bad := range []string{"13/25", "00/30", "01/20", "1/25", "12-99", "12/2099"} {
			_, err := payments.Add(ctx, f.admin.ID, "4111111111111111", "N", bad, false)
			assert.ErrorIs(t, err, ErrInvalidInput, "expiry %q must be rejected", bad)
		}
	})
}

func TestListPaymentMethods(t *testing.T) {
	f := newFixture(t)
	payments := f.paymentService()
	ctx := context.Background()

	_, err := payments.Add(ctx, f.admin.ID, "4111111111111111", "Nick Fury", "12/99", true)
	require.NoError(t, err)
	_, err = payments.Add(ctx, f.admin.ID, "5500000000000004", "Nick Fury", "06/99", false)
	require.NoError(t, err)

	methods, err := payments.List(ctx, f.admin.ID)
	require.NoError(t, err)
	assert.Len(t, methods, 2)

	// non-admins own no methods and see an empty list
	methods, err = payments.List(ctx, f.memberIndia.ID)
	require.NoError(t, err)
	assert.Empty(t, methods)
}

func TestUpdatePaymentMethod(t *testing.T) {
	f := newFixture(t)
	payments := f.paymentService()
	ctx := context.Background()

	method, err := payments.Add(ctx, f.admin.ID, "4111111111111111", "Nick Fury", "12/99", false)
	require.NoError(t, err)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		updated, err := payments.Update(ctx, f.admin.ID, method.ID, PaymentMethodInput{
			CardHolder: strptr("Director Fury"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Director Fury", updated.CardHolder)
		assert.Equal(t, "4111111111111111", updated.CardNumber)
		assert.Equal(t, "12/99", updated.ExpiryDate)
	})

	t.Run("supplied fields are re-validated", func(t *testing.T) {
		_, err := payments.Update(ctx, f.admin.ID, method.ID, PaymentMethodInput{
			CardNumber: strptr("1234"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = payments.Update(ctx, f.admin.ID, method.ID, PaymentMethodInput{
			ExpiryDate: strptr("13/25"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := payments.Update(ctx, f.admin.ID, "missing", PaymentMethodInput{})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("non-admin denied", func(t *testing.T) {
		_, err := payments.Update(ctx, f.managerUS.ID, method.ID, PaymentMethodInput{})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestDeletePaymentMethod(t *testing.T) {
	f := newFixture(t)
	payments := f.paymentService()
	ctx := context.Background()

	method, err := payments.Add(ctx, f.admin.ID, "4111111111111111", "Nick Fury", "12/99", false)
	require.NoError(t, err)

	assert.ErrorIs(t, payments.Delete(ctx, f.memberIndia.ID, method.ID), ErrAccessDenied)

	require.NoError(t, payments.Delete(ctx, f.admin.ID, method.ID))

	methods, err := payments.List(ctx, f.admin.ID)
	require.NoError(t, err)
	assert.Empty(t, methods)

	assert.ErrorIs(t, payments.Delete(ctx, f.admin.ID, method.ID), ErrNotFound)
}
