package domain

// User é a conta de acesso da aplicação. O campo Password guarda o hash bcrypt
// e participa da serialização apenas para persistência; os handlers respondem
// com UserResponse, que nunca expõe o hash.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateUserRequest é o corpo aceito na criação de usuários.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse é a projeção de User devolvida pela API.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Response converte o usuário para a projeção pública.
func (u *User) Response() *UserResponse {
	return &UserResponse{ID: u.ID, Username: u.Username}
}
