package model

// Account represents a property manager who owns a private slice of every
// other collection in the datastore. The PasswordHash field holds a bcrypt
// digest and is never serialized into API responses; it does appear in the
// persisted document, which is why the json tag is kept.
//
// Fields:
//  ID           – unique identifier (uuid).
//  Email        – unique login email, lowercased at registration.
//  PasswordHash – bcrypt digest of the password.
//  FullName     – display name of the manager.
//  CompanyName  – optional business name.
//  Phone        – optional contact number.
//  IsActive     – deactivated accounts cannot authenticate.
//  CreatedAt    – RFC 3339 creation timestamp.
type Account struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
	FullName     string `json:"fullName"`
	CompanyName  string `json:"companyName"`
	Phone        string `json:"phone"`
	IsActive     bool   `json:"isActive"`
	CreatedAt    string `json:"createdAt"`
}

// PublicAccount is the subset of Account fields safe to return to clients.
type PublicAccount struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	CompanyName string `json:"companyName"`
	Phone       string `json:"phone"`
}

// Public strips the credential material from an account record.
func (a Account) Public() PublicAccount {
	return PublicAccount{
		ID:          a.ID,
		Email:       a.Email,
		FullName:    a.FullName,
		CompanyName: a.CompanyName,
		Phone:       a.Phone,
	}
}
