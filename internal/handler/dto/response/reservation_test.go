//go:build unit

package response_test

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/payment"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFromReservationView(t *testing.T) {
	paidAt := time.Date(2023, time.December, 2, 10, 0, 0, 0, time.UTC)
	view := builder.NewReservationBuilder().Paid(paidAt).BuildView()

	got, err := resdto.FromReservationView(view)
	require.NoError(t, err)

	want := &resdto.ReservationResponse{
		ID:           1,
		RoomNumber:   101,
		RoomCategory: "Standard",
		GuestName:    "Alice",
		CheckInDate:  "2024-01-01",
		CheckOutDate: "2024-01-04",
		Nights:       3,
		TotalAmount:  "300.00",
		Status:       view.Status,
		CreatedAt:    view.CreatedAt,
		PaidAt:       &paidAt,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestFromPaymentResult(t *testing.T) {
	t.Run("declined carries the reason", func(t *testing.T) {
		got, err := resdto.FromPaymentResult(&commands.PaymentResult{
			Outcome:       commands.OutcomeDeclined,
			Reservation:   builder.NewReservationBuilder().BuildView(),
			DeclineReason: payment.ReasonInvalidCardNumber,
		})
		require.NoError(t, err)
		require.Equal(t, string(commands.OutcomeDeclined), got.Outcome)
		require.Equal(t, string(payment.ReasonInvalidCardNumber), got.DeclineReason)
		require.NotNil(t, got.Reservation)
		require.Equal(t, "300.00", got.Reservation.TotalAmount)
	})

	t.Run("not found has no reservation", func(t *testing.T) {
		got, err := resdto.FromPaymentResult(&commands.PaymentResult{Outcome: commands.OutcomeReservationNotFound})
		require.NoError(t, err)
		require.Nil(t, got.Reservation)
	})
}
