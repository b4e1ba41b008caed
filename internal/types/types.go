// Package types provides common type definitions for the creator tipping service.
package types

// Token represents a tip asset accepted by the service
type Token string

const (
	// TokenUSDC represents USDC tips
	TokenUSDC Token = "USDC"
	// TokenETH represents native ETH tips
	TokenETH Token = "ETH"
)

// AllowedTokens lists every token the service accepts, in display order.
var AllowedTokens = []Token{TokenUSDC, TokenETH}

// IsAllowedToken reports whether t is a member of the token allow-list.
func IsAllowedToken(t Token) bool {
	for _, allowed := range AllowedTokens {
		if t == allowed {
			return true
		}
	}
	return false
}

// TipStatus represents the lifecycle state of a tip record
type TipStatus string

const (
	// TipStatusCompleted represents a tip whose on-chain transfer succeeded
	TipStatusCompleted TipStatus = "completed"
	// TipStatusPending represents a tip awaiting on-chain confirmation
	TipStatusPending TipStatus = "pending"
	// TipStatusFailed represents a tip whose on-chain transfer failed
	TipStatusFailed TipStatus = "failed"
)

// NotificationType represents the closed set of notification events
type NotificationType string

const (
	// NotificationTipReceived is sent to a creator when a tip lands
	NotificationTipReceived NotificationType = "tip_received"
	// NotificationMilestone is sent when a creator crosses a tipping milestone
	NotificationMilestone NotificationType = "milestone_reached"
	// NotificationNewFollower is sent when a creator gains a follower
	NotificationNewFollower NotificationType = "new_follower"
)

// Error codes used across the service layer. Handlers map these to HTTP
// status codes at the boundary.
const (
	ErrCodeValidation = "VALIDATION"
	ErrCodeAuth       = "AUTH"
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeStorage    = "STORAGE"
)

// ServiceError represents a structured error raised by the service layer
type ServiceError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *ServiceError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error carrying the collected
// field errors.
func NewValidationError(message string, fieldErrors []string) *ServiceError {
	var details map[string]interface{}
	if len(fieldErrors) > 0 {
		details = map[string]interface{}{"errors": fieldErrors}
	}
	return &ServiceError{Code: ErrCodeValidation, Message: message, Details: details}
}

// NewAuthError creates an authentication failure error.
func NewAuthError(message string) *ServiceError {
	return &ServiceError{Code: ErrCodeAuth, Message: message}
}

// NewNotFoundError creates a not-found error for the named entity.
func NewNotFoundError(message string) *ServiceError {
	return &ServiceError{Code: ErrCodeNotFound, Message: message}
}

// NewStorageError wraps an underlying persistence failure.
func NewStorageError(message string) *ServiceError {
	return &ServiceError{Code: ErrCodeStorage, Message: message}
}
