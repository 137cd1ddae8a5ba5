package platform

import "context"

// Mentor is a mentor profile as listed to mentees
type Mentor struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Bio        string `json:"bio"`
	Occupation string `json:"occupation"`
	Expertise  string `json:"expertise"`
}

const getAllMentorsQuery = `
query GetAllMentors {
  getAllMentors {
    firstName
    lastName
    email
    bio
    occupation
    expertise
  }
}`

// GetAllMentors retrieves every mentor profile
func (c *Client) GetAllMentors(ctx context.Context) ([]Mentor, error) {
	var data struct {
		GetAllMentors []Mentor `json:"getAllMentors"`
	}

	if err := c.do(ctx, getAllMentorsQuery, nil, &data); err != nil {
		return nil, err
	}

	return data.GetAllMentors, nil
}
