package platform

import "context"

// Person is a minimal name pair used for review authors and mentees
type Person struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
}

// Review is a mentee's review of a mentor
type Review struct {
	ID      string `json:"id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Mentee  Person `json:"mentee"`
}

const getReviewsForMentorQuery = `
query GetReviewsForMentor($mentorEmail: String!) {
  getReviewsForMentor(mentorEmail: $mentorEmail) {
    id
    rating
    comment
    mentee {
      firstName
      lastName
    }
  }
}`

// GetReviewsForMentor retrieves all visible reviews for a mentor
func (c *Client) GetReviewsForMentor(ctx context.Context, mentorEmail string) ([]Review, error) {
	var data struct {
		GetReviewsForMentor []Review `json:"getReviewsForMentor"`
	}

	err := c.do(ctx, getReviewsForMentorQuery, map[string]any{
		"mentorEmail": mentorEmail,
	}, &data)
	if err != nil {
		return nil, err
	}

	return data.GetReviewsForMentor, nil
}

const hideReviewMutation = `
mutation HideReview($reviewId: String!) {
  hideReview(reviewId: $reviewId) {
    message
  }
}`

// HideReview hides a review from mentor listings (admin moderation)
func (c *Client) HideReview(ctx context.Context, reviewID string) (string, error) {
	var data struct {
		HideReview struct {
			Message string `json:"message"`
		} `json:"hideReview"`
	}

	err := c.do(ctx, hideReviewMutation, map[string]any{
		"reviewId": reviewID,
	}, &data)
	if err != nil {
		return "", err
	}

	return data.HideReview.Message, nil
}

// AverageRating computes the mean rating of a review list, 0 when empty
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	total := 0
	for _, review := range reviews {
		total += review.Rating
	}
	return float64(total) / float64(len(reviews))
}
