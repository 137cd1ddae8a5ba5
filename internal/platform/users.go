package platform

import "context"

// User is a platform account as listed to administrators
type User struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	IsMentor   bool   `json:"isMentor"`
	Bio        string `json:"bio"`
	Occupation string `json:"occupation"`
	Expertise  string `json:"expertise"`
}

// Role returns the display role derived from the mentor flag
func (u User) Role() string {
	if u.IsMentor {
		return "mentor"
	}
	return "mentee"
}

const allUsersQuery = `
query AllUsers {
  allUsers {
    firstName
    lastName
    email
    isMentor
    bio
    occupation
    expertise
  }
}`

// AllUsers retrieves every platform account
func (c *Client) AllUsers(ctx context.Context) ([]User, error) {
	var data struct {
		AllUsers []User `json:"allUsers"`
	}

	if err := c.do(ctx, allUsersQuery, nil, &data); err != nil {
		return nil, err
	}

	return data.AllUsers, nil
}

const changeUserToMentorMutation = `
mutation ChangeUserToMentor($email: String!) {
  changeUserToMentor(email: $email) {
    message
  }
}`

// ChangeUserToMentor promotes a mentee account to mentor
func (c *Client) ChangeUserToMentor(ctx context.Context, email string) (string, error) {
	var data struct {
		ChangeUserToMentor struct {
			Message string `json:"message"`
		} `json:"changeUserToMentor"`
	}

	err := c.do(ctx, changeUserToMentorMutation, map[string]any{
		"email": email,
	}, &data)
	if err != nil {
		return "", err
	}

	return data.ChangeUserToMentor.Message, nil
}

const deleteUserMutation = `
mutation DeleteUser($id: ID!) {
  deleteUser(id: $id) {
    success
  }
}`

// DeleteUser removes a platform account
func (c *Client) DeleteUser(ctx context.Context, id string) (bool, error) {
	var data struct {
		DeleteUser struct {
			Success bool `json:"success"`
		} `json:"deleteUser"`
	}

	err := c.do(ctx, deleteUserMutation, map[string]any{
		"id": id,
	}, &data)
	if err != nil {
		return false, err
	}

	return data.DeleteUser.Success, nil
}
