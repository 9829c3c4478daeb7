package bakery

import "fmt"

// Identifiers of the register page.
const (
	RegisterUsernameInput = "register-username-input"
	RegisterEmailInput    = "register-email-input"
	RegisterPasswordInput = "register-password-input"
	RegisterConfirmInput  = "register-confirm-input"
	RegisterTermsCheckbox = "register-terms-checkbox"
	RegisterSubmitButton  = "register-submit-button"
	RegisterUsernameError = "register-username-error"
	RegisterEmailError    = "register-email-error"
	RegisterPasswordError = "register-password-error"
	RegisterConfirmError  = "register-confirm-error"
	RegisterError         = "register-error"
	RegisterSuccess       = "register-success"
	PasswordStrengthBar   = "strength-bar"
	RegisterLoginLink     = "login-link"
)

// Identifiers of the login page.
const (
	LoginUsernameInput = "login-username-input"
	LoginPasswordInput = "login-password-input"
	LoginRememberMe    = "login-remember-checkbox"
	LoginSubmitButton  = "login-submit-button"
	LoginUsernameError = "login-username-error"
	LoginPasswordError = "login-password-error"
	LoginError         = "login-error"
	LoginSuccess       = "login-success"
	ForgotPasswordLink = "forgot-password-link"
	ForgotModal        = "forgot-modal"
	ResetEmailInput    = "reset-email-input"
	ResetSubmitButton  = "reset-submit-button"
	ResetMessage       = "reset-message"
	ForgotCloseButton  = "forgot-close-button"
	LoginRegisterLink  = "register-link"
)

// Identifiers of the dashboard page.
const (
	DashboardHeader = "dashboard-header"
	DisplayName     = "display-name"
	ProfileButton   = "profile-button"
	ProfileMenu     = "profile-menu"
	OrderHistoryBtn = "order-history-button"
	SettingsButton  = "settings-button"
	LogoutButton    = "logout-button"

	MenuSection       = "menu-section"
	SearchInput       = "search-input"
	SearchClearButton = "search-clear-button"
	NoResults         = "no-results"

	ComboItemSelect   = "combo-item-select"
	QuantityInput     = "quantity-input"
	QuantityDecrement = "quantity-decrement"
	QuantityIncrement = "quantity-increment"
	AddToCartButton   = "add-to-cart-button"

	CartSection      = "cart-section"
	CartCount        = "cart-count"
	EmptyCart        = "empty-cart"
	CartTable        = "cart-table"
	CartSummary      = "cart-summary"
	Subtotal         = "subtotal"
	TaxAmount        = "tax-amount"
	TotalPrice       = "total-price"
	PromoCodeInput   = "promo-code-input"
	ApplyPromoButton = "apply-promo-button"
	PromoMessage     = "promo-message"
	ClearCartButton  = "clear-cart-button"
	CheckoutButton   = "checkout-button"

	CheckoutModal       = "checkout-modal"
	CheckoutMessage     = "checkout-message"
	OrderNumber         = "order-number"
	CloseCheckoutButton = "close-checkout-button"

	OrderHistoryModal  = "order-history-modal"
	OrderHistoryList   = "order-history-list"
	NoOrders           = "no-orders"
	CloseHistoryButton = "close-history-button"

	SettingsModal       = "settings-modal"
	DisplayNameInput    = "display-name-input"
	SaveSettingsButton  = "save-settings-button"
	CloseSettingsButton = "close-settings-button"

	Notification     = "notification"
	NotificationText = "notification-text"
)

// Prefixes of identifiers the application numbers at runtime.
const (
	CartItemPrefix     = "cart-item-"
	RemoveItemPrefix   = "remove-item-"
	HistoryOrderPrefix = "history-order-"
)

// MenuItemID identifies the menu row of the item with the given ref.
func MenuItemID(ref int) string { return fmt.Sprintf("menu-item-%d", ref) }

// QuickAddID identifies the quick-add button of a menu row.
func QuickAddID(ref int) string { return fmt.Sprintf("quick-add-%d", ref) }

// CartItemID identifies the n-th cart row, counting from 1.
func CartItemID(n int) string { return fmt.Sprintf("%s%d", CartItemPrefix, n) }

// RemoveItemID identifies the remove button of the n-th cart row.
func RemoveItemID(n int) string { return fmt.Sprintf("%s%d", RemoveItemPrefix, n) }

// HistoryOrderID identifies the n-th entry of the order history list.
func HistoryOrderID(n int) string { return fmt.Sprintf("%s%d", HistoryOrderPrefix, n) }

// FilterID identifies the filter button of a category.
func FilterID(c Category) string { return "filter-" + string(c) }

// RegisterPageIDs lists the identifiers present in the register page markup.
var RegisterPageIDs = []string{
	RegisterUsernameInput, RegisterEmailInput, RegisterPasswordInput, RegisterConfirmInput,
	RegisterTermsCheckbox, RegisterSubmitButton,
	RegisterUsernameError, RegisterEmailError, RegisterPasswordError, RegisterConfirmError,
	RegisterError, RegisterSuccess, PasswordStrengthBar, RegisterLoginLink,
}

// LoginPageIDs lists the identifiers present in the login page markup.
var LoginPageIDs = []string{
	LoginUsernameInput, LoginPasswordInput, LoginRememberMe, LoginSubmitButton,
	LoginUsernameError, LoginPasswordError, LoginError, LoginSuccess,
	ForgotPasswordLink, ForgotModal, ResetEmailInput, ResetSubmitButton, ResetMessage, ForgotCloseButton,
	LoginRegisterLink,
}

// DashboardPageIDs lists the identifiers present in the dashboard markup
// before any script runs. Menu rows and filters are derived from Menu.
func DashboardPageIDs() []string {
	ids := []string{
		DashboardHeader, DisplayName, ProfileButton, ProfileMenu, OrderHistoryBtn, SettingsButton, LogoutButton,
		MenuSection, SearchInput, SearchClearButton, NoResults,
		ComboItemSelect, QuantityInput, QuantityDecrement, QuantityIncrement, AddToCartButton,
		CartSection, CartCount, EmptyCart, CartTable, CartSummary, Subtotal, TaxAmount, TotalPrice,
		PromoCodeInput, ApplyPromoButton, PromoMessage, ClearCartButton, CheckoutButton,
		CheckoutModal, CheckoutMessage, OrderNumber, CloseCheckoutButton,
		OrderHistoryModal, OrderHistoryList, CloseHistoryButton,
		SettingsModal, DisplayNameInput, SaveSettingsButton, CloseSettingsButton,
		Notification, NotificationText,
		FilterID(CategoryAll),
	}
	for _, c := range Categories {
		ids = append(ids, FilterID(c))
	}
	for _, item := range Menu {
		ids = append(ids, MenuItemID(item.Ref), QuickAddID(item.Ref))
	}
	return ids
}
