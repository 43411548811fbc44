package payment

import (
	"strings"

	"hotel-booking/internal/domain/money"
)

const CardNumberLength = 16

type Method string

const (
	MethodDebitCard  Method = "DebitCard"
	MethodCreditCard Method = "CreditCard"
)

// methodLabels maps each accepted spelling to its method. The spaced form is
// the label shown to guests.
var methodLabels = map[string]Method{
	"DebitCard":   MethodDebitCard,
	"Debit Card":  MethodDebitCard,
	"CreditCard":  MethodCreditCard,
	"Credit Card": MethodCreditCard,
}

// ParseMethod matches one of the labels above, ignoring case and
// surrounding spaces.
func ParseMethod(value string) (Method, bool) {
	value = strings.TrimSpace(value)
	for label, m := range methodLabels {
		if strings.EqualFold(label, value) {
			return m, true
		}
	}
	return "", false
}

type Instrument struct {
	Method      string
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
}

type DeclineReason string

const (
	ReasonNone              DeclineReason = ""
	ReasonUnsupportedMethod DeclineReason = "unsupported_method"
	ReasonInvalidCardNumber DeclineReason = "invalid_card_number"
)

type Decision struct {
	Authorized bool
	Reason     DeclineReason
}

func Authorized() Decision {
	return Decision{Authorized: true}
}

func Declined(reason DeclineReason) Decision {
	return Decision{Authorized: false, Reason: reason}
}

type Authorizer interface {
	Authorize(amount money.Money, instrument Instrument) Decision
}

// LocalAuthorizer approves debit and credit cards with a well-formed number.
// Expiry is accepted as given and never compared with the current date.
type LocalAuthorizer struct{}

func NewLocalAuthorizer() *LocalAuthorizer {
	return &LocalAuthorizer{}
}

func (a *LocalAuthorizer) Authorize(_ money.Money, instrument Instrument) Decision {
	if _, ok := ParseMethod(instrument.Method); !ok {
		return Declined(ReasonUnsupportedMethod)
	}
	if !IsValidCardNumber(instrument.CardNumber) {
		return Declined(ReasonInvalidCardNumber)
	}
	return Authorized()
}

// IsValidCardNumber requires exactly CardNumberLength ASCII digits.
func IsValidCardNumber(cardNumber string) bool {
	if len(cardNumber) != CardNumberLength {
		return false
	}
	for i := 0; i < len(cardNumber); i++ {
		if cardNumber[i] < '0' || cardNumber[i] > '9' {
			return false
		}
	}
	return true
}
