package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"schoolconnect/internal/core/domain"
	"schoolconnect/internal/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var transactionPattern = regexp.MustCompile(`^TXN[0-9A-F]{12}$`)

func TestCreateDonation(t *testing.T) {
	f := newFixture(t)

	donation, err := f.funding.CreateDonation(context.Background(), &DonationInput{
		DonorName:  "Lakshmi",
		DonorEmail: "lakshmi@example.com",
		Amount:     2500,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentCompleted, donation.PaymentStatus)
	require.NotNil(t, donation.TransactionID)
	assert.Regexp(t, transactionPattern, *donation.TransactionID)
}

func TestCreateDonationValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input DonationInput
		field string
	}{
		{"zero amount", DonationInput{DonorName: "A", DonorEmail: "a@example.com"}, "amount"},
		{"negative amount", DonationInput{DonorName: "A", DonorEmail: "a@example.com", Amount: -5}, "amount"},
		{"bad email", DonationInput{DonorName: "A", DonorEmail: "nope", Amount: 5}, "donor_email"},
		{"missing name", DonationInput{DonorEmail: "a@example.com", Amount: 5}, "donor_name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.input
			_, err := f.funding.CreateDonation(ctx, &in)
			var vErr *validation.Error
			require.True(t, errors.As(err, &vErr))
			assert.Contains(t, vErr.Fields, tt.field)
		})
	}
}

func TestTransactionIDsAreDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := newTransactionID()
		assert.False(t, seen[id], "duplicate %s", id)
		seen[id] = true
	}
}

func TestSchoolNeeds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	target := 50000.0
	need, err := f.funding.CreateNeed(ctx, &NeedInput{
		SchoolID:     "school-001",
		Title:        "Computer lab",
		Description:  "Ten desktops",
		Category:     "infrastructure",
		TargetAmount: &target,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.NeedActive, need.Status)
	assert.Zero(t, need.RaisedAmount)

	items, total, err := f.funding.ListNeeds(ctx, NeedFilter{SchoolID: "school-001", Status: domain.NeedActive}, firstPage)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, need.ID, items[0].ID)

	items, total, err = f.funding.ListNeeds(ctx, NeedFilter{Status: domain.NeedClosed}, firstPage)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)
}
