package transport

import (
	"net/http"
	"strconv"

	cartapp "github.com/cafelumiere/cafe-api/application/cart"
	checkoutapp "github.com/cafelumiere/cafe-api/application/checkout"
	productapp "github.com/cafelumiere/cafe-api/application/product"
	userapp "github.com/cafelumiere/cafe-api/application/user"
	"github.com/cafelumiere/cafe-api/constant"
	utilsContext "github.com/cafelumiere/cafe-api/utils/context"
	"github.com/cafelumiere/cafe-api/utils/errors"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp     userapp.UserApp
	ProductApp  productapp.ProductApp
	CartApp     cartapp.CartApp
	CheckoutApp checkoutapp.CheckoutApp
}

func NewTransport(userApp userapp.UserApp, productApp productapp.ProductApp, cartApp cartapp.CartApp, checkoutApp checkoutapp.CheckoutApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:     userApp,
		ProductApp:  productApp,
		CartApp:     cartApp,
		CheckoutApp: checkoutApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/api/users/signup", rh.Signup).Methods(http.MethodPost)
	mux.HandleFunc("/api/users/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/api/users/forgot-password", rh.ForgotPassword).Methods(http.MethodPost)
	mux.HandleFunc("/api/users/reset-password/{token}", rh.VerifyResetToken).Methods(http.MethodGet)
	mux.HandleFunc("/api/users/reset-password/{token}", rh.ResetPassword).Methods(http.MethodPost)

	// Catalog
	mux.HandleFunc("/api/products", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/api/products/category/{categoryName}", rh.ListProductsByCategory).Methods(http.MethodGet)
	mux.HandleFunc("/api/products/{id}", rh.GetProduct).Methods(http.MethodGet)
	mux.HandleFunc("/api/products", adminOnly(rh.CreateProduct)).Methods(http.MethodPost)
	mux.HandleFunc("/api/products/{id}", adminOnly(rh.UpdateProduct)).Methods(http.MethodPut)
	mux.HandleFunc("/api/products/{id}", adminOnly(rh.DeleteProduct)).Methods(http.MethodDelete)

	mux.HandleFunc("/api/categories", rh.ListCategories).Methods(http.MethodGet)
	mux.HandleFunc("/api/categories/{id}", rh.GetCategory).Methods(http.MethodGet)
	mux.HandleFunc("/api/categories", adminOnly(rh.CreateCategory)).Methods(http.MethodPost)
	mux.HandleFunc("/api/categories/{id}", adminOnly(rh.UpdateCategory)).Methods(http.MethodPut)
	mux.HandleFunc("/api/categories/{id}", adminOnly(rh.DeleteCategory)).Methods(http.MethodDelete)

	// Cart
	mux.HandleFunc("/api/cart", rh.AddToCart).Methods(http.MethodPost)
	mux.HandleFunc("/api/cart/{userId}", rh.GetCart).Methods(http.MethodGet)
	mux.HandleFunc("/api/cart/{userId}/item/{productId}", rh.UpdateCartItem).Methods(http.MethodPut)
	mux.HandleFunc("/api/cart/{userId}/item/{productId}", rh.RemoveCartItem).Methods(http.MethodDelete)
	mux.HandleFunc("/api/cart/{userId}", rh.ClearCart).Methods(http.MethodDelete)

	// Orders
	mux.HandleFunc("/api/orders", rh.PlaceOrder).Methods(http.MethodPost)
	mux.HandleFunc("/api/orders", adminOnly(rh.ListOrders)).Methods(http.MethodGet)
	mux.HandleFunc("/api/orders/user/{userId}", rh.ListUserOrders).Methods(http.MethodGet)
	mux.HandleFunc("/api/orders/{orderId}", rh.GetOrder).Methods(http.MethodGet)
	mux.HandleFunc("/api/orders/{orderId}/status", adminOnly(rh.UpdateOrderStatus)).Methods(http.MethodPut)
	mux.HandleFunc("/api/orders/{orderId}/cancel", rh.CancelOrder).Methods(http.MethodPut)
	mux.HandleFunc("/api/orders/{orderId}", adminOnly(rh.DeleteOrder)).Methods(http.MethodDelete)

	// Users
	mux.HandleFunc("/api/users", adminOnly(rh.ListUsers)).Methods(http.MethodGet)
	mux.HandleFunc("/api/users/validate-promo", rh.ValidatePromo).Methods(http.MethodPost)
	mux.HandleFunc("/api/users/{id}/generate-promo", rh.GeneratePromo).Methods(http.MethodPost)
	mux.HandleFunc("/api/users/{id}/profile", rh.UpdateProfile).Methods(http.MethodPut)
	mux.HandleFunc("/api/users/{id}/block", adminOnly(rh.BlockUser)).Methods(http.MethodPut)
	mux.HandleFunc("/api/users/{id}/unblock", adminOnly(rh.UnblockUser)).Methods(http.MethodPut)
	mux.HandleFunc("/api/users/{id}", rh.GetUser).Methods(http.MethodGet)
	mux.HandleFunc("/api/users/{id}", adminOnly(rh.UpdateUser)).Methods(http.MethodPut)
	mux.HandleFunc("/api/users/{id}", adminOnly(rh.DeleteUser)).Methods(http.MethodDelete)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(userApp))

	return mux
}

// adminOnly rejects requests whose token does not carry the admin role
func adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role, ok := utilsContext.GetUserRole(r.Context())
		if !ok || role != constant.RoleAdmin {
			writeError(w, errors.SetCustomError(constant.ErrForbidden))
			return
		}
		next(w, r)
	}
}

// pathID extracts a numeric path variable
func pathID(r *http.Request, name string) (uint64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return id, nil
}
