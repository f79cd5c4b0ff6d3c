package user

type ProvisionReq struct {
	Username string `json:"username" validate:"required"`
}

type ProvisionResp struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}
