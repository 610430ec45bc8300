package validatorx

import (
	"sync"

	"github.com/cafelumiere/cafe-api/constant"
	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	_ = v.RegisterValidation("payment_method", validPaymentMethod)
	_ = v.RegisterValidation("order_status", validOrderStatus)
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

func validPaymentMethod(fl gpvalidator.FieldLevel) bool {
	m := constant.PaymentMethod(fl.Field().String())
	return m == constant.PaymentCashOnDelivery || m == constant.PaymentBankTransfer
}

func validOrderStatus(fl gpvalidator.FieldLevel) bool {
	return constant.OrderStatus(fl.Field().String()).Valid()
}
