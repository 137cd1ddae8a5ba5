package platform

import "context"

// UserIdentity is the principal shape embedded in the login payload
type UserIdentity struct {
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
	IsMentor  bool   `json:"isMentor"`
	IsAdmin   bool   `json:"isAdmin"`
}

// LoginPayload is the loginUser mutation payload. A missing or empty
// AccessToken means the platform rejected the credentials, even when the
// HTTP exchange itself succeeded.
type LoginPayload struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserIdentity `json:"user"`
	Message      string       `json:"message"`
}

const loginUserMutation = `
mutation LoginUser($email: String!, $password: String!) {
  loginUser(email: $email, password: $password) {
    accessToken
    refreshToken
    user {
      firstName
      email
      isMentor
      isAdmin
    }
    message
  }
}`

// LoginUser exchanges credentials for an access token
func (c *Client) LoginUser(ctx context.Context, email, password string) (*LoginPayload, error) {
	var data struct {
		LoginUser *LoginPayload `json:"loginUser"`
	}

	err := c.do(ctx, loginUserMutation, map[string]any{
		"email":    email,
		"password": password,
	}, &data)
	if err != nil {
		return nil, err
	}

	if data.LoginUser == nil {
		return &LoginPayload{}, nil
	}
	return data.LoginUser, nil
}

// RegisterInput carries the account creation form fields
type RegisterInput struct {
	FirstName  string
	LastName   string
	Email      string
	Password   string
	Address    string
	Bio        string
	Occupation string
	Expertise  string
}

const registerUserMutation = `
mutation RegisterUser($firstName: String!, $lastName: String!, $email: String!, $password: String!, $address: String, $bio: String, $occupation: String, $expertise: String) {
  registerUser(firstName: $firstName, lastName: $lastName, email: $email, password: $password, address: $address, bio: $bio, occupation: $occupation, expertise: $expertise) {
    message
  }
}`

// RegisterUser creates a new account and returns the platform's message
func (c *Client) RegisterUser(ctx context.Context, input RegisterInput) (string, error) {
	var data struct {
		RegisterUser struct {
			Message string `json:"message"`
		} `json:"registerUser"`
	}

	err := c.do(ctx, registerUserMutation, map[string]any{
		"firstName":  input.FirstName,
		"lastName":   input.LastName,
		"email":      input.Email,
		"password":   input.Password,
		"address":    input.Address,
		"bio":        input.Bio,
		"occupation": input.Occupation,
		"expertise":  input.Expertise,
	}, &data)
	if err != nil {
		return "", err
	}

	return data.RegisterUser.Message, nil
}
