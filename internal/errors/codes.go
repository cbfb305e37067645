package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidPhone  ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
)

// Bank account error codes (ACCOUNT_*)
const (
	AccountNotFound              ErrorCode = "ACCOUNT_001"
	AccountInactive              ErrorCode = "ACCOUNT_002"
	AccountInsufficientBalance   ErrorCode = "ACCOUNT_003"
	AccountNumberExists          ErrorCode = "ACCOUNT_004"
	AccountInvalidCategory       ErrorCode = "ACCOUNT_005"
	AccountOperationNotPermitted ErrorCode = "ACCOUNT_006"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound       ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount  ErrorCode = "TRANSACTION_002"
	TransactionInvalidType    ErrorCode = "TRANSACTION_003"
	TransactionInvalidBalance ErrorCode = "TRANSACTION_004"
)

// Transfer error codes (TRANSFER_*)
const (
	TransferSameAccount       ErrorCode = "TRANSFER_001"
	TransferPending           ErrorCode = "TRANSFER_002"
	TransferFailed            ErrorCode = "TRANSFER_003"
	TransferNotFound          ErrorCode = "TRANSFER_004"
	TransferInsufficientFunds ErrorCode = "TRANSFER_005"
	TransferInvalidAmount     ErrorCode = "TRANSFER_006"
)

// Dilar error codes (DILAR_*)
const (
	DilarNotFound      ErrorCode = "DILAR_001"
	DilarInactive      ErrorCode = "DILAR_002"
	DilarContactExists ErrorCode = "DILAR_003"
	DilarInvalidPhone  ErrorCode = "DILAR_004"
)

// Exchange error codes (EXCHANGE_*)
const (
	ExchangeNotFound        ErrorCode = "EXCHANGE_001"
	ExchangeInvalidType     ErrorCode = "EXCHANGE_002"
	ExchangeInvalidRate     ErrorCode = "EXCHANGE_003"
	ExchangeInvalidQuantity ErrorCode = "EXCHANGE_004"
	ExchangeInvalidCurrency ErrorCode = "EXCHANGE_005"
)

// Reserve error codes (RESERVE_*)
const (
	ReserveNotFound     ErrorCode = "RESERVE_001"
	ReserveInsufficient ErrorCode = "RESERVE_002"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound   ErrorCode = "CATEGORY_001"
	CategoryNameExists ErrorCode = "CATEGORY_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AuthInvalidCredentials:     "Invalid email or password",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidPhone:  "Invalid mobile number format",
	ValidationInvalidDate:   "Invalid date format or range",

	AccountNotFound:              "Bank account not found",
	AccountInactive:              "Bank account is closed or inactive",
	AccountInsufficientBalance:   "Insufficient account balance",
	AccountNumberExists:          "An account with this account number already exists",
	AccountInvalidCategory:       "Invalid account category",
	AccountOperationNotPermitted: "Account operation not permitted",

	TransactionNotFound:       "Transaction not found",
	TransactionInvalidAmount:  "Invalid transaction amount",
	TransactionInvalidType:    "Invalid transaction type",
	TransactionInvalidBalance: "Transaction would make the account balance negative",

	TransferSameAccount:       "Cannot transfer to the same account",
	TransferPending:           "A transfer with this idempotency key is still processing",
	TransferFailed:            "A transfer with this idempotency key previously failed",
	TransferNotFound:          "Transfer not found",
	TransferInsufficientFunds: "Source account has insufficient balance for this transfer",
	TransferInvalidAmount:     "Invalid transfer amount",

	DilarNotFound:      "Dilar not found",
	DilarInactive:      "Dilar is deactivated",
	DilarContactExists: "A dilar with this contact number already exists",
	DilarInvalidPhone:  "Invalid dilar contact number",

	ExchangeNotFound:        "Exchange not found",
	ExchangeInvalidType:     "Exchange type must be Buy or Sell",
	ExchangeInvalidRate:     "Exchange rate must be positive",
	ExchangeInvalidQuantity: "Exchange quantity must be positive",
	ExchangeInvalidCurrency: "Invalid currency code",

	ReserveNotFound:     "No reserve exists for this currency",
	ReserveInsufficient: "Reserve holds less of this currency than the requested sale",

	CategoryNotFound:   "Category not found",
	CategoryNameExists: "A category with this name already exists",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
