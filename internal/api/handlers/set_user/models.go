package set_user

// SetUserRequest HTTP request model. ID пользователя берется из URL.
// Баланс перезаписывается безусловно, а не прибавляется.
type SetUserRequest struct {
	Balance int64 `json:"balance"`
}
