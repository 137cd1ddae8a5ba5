package tui

import (
	"fmt"
	"strings"

	"github.com/freementors/mentorctl/internal/platform"
)

// RenderMentors renders the mentor listing as an aligned table.
func RenderMentors(mentors []platform.Mentor) string {
	if len(mentors) == 0 {
		return DefaultStyles().Muted.Render("No mentors are available yet.") + "\n"
	}

	rows := make([][]string, 0, len(mentors))
	for _, m := range mentors {
		rows = append(rows, []string{
			m.FirstName + " " + m.LastName,
			m.Email,
			m.Occupation,
			m.Expertise,
		})
	}
	return renderTable([]string{"NAME", "EMAIL", "OCCUPATION", "EXPERTISE"}, rows)
}

// RenderReviews renders a mentor's reviews with the average rating on top.
func RenderReviews(mentorEmail string, reviews []platform.Review) string {
	styles := DefaultStyles()

	var b strings.Builder
	b.WriteString(styles.Title.Render("Reviews for " + mentorEmail))
	b.WriteString("\n")

	if len(reviews) == 0 {
		b.WriteString(styles.Muted.Render("No reviews yet."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(styles.Label.Render("Average rating: "))
	b.WriteString(styles.Value.Render(fmt.Sprintf("%.1f/5 (%d reviews)", platform.AverageRating(reviews), len(reviews))))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(reviews))
	for _, r := range reviews {
		rows = append(rows, []string{
			renderStars(r.Rating),
			r.Mentee.FirstName + " " + r.Mentee.LastName,
			r.Comment,
		})
	}
	b.WriteString(renderTable([]string{"RATING", "MENTEE", "COMMENT"}, rows))
	return b.String()
}

// RenderSessionRequests renders a mentor's pending session queue.
func RenderSessionRequests(requests []platform.SessionRequest) string {
	if len(requests) == 0 {
		return DefaultStyles().Muted.Render("No pending session requests.") + "\n"
	}

	rows := make([][]string, 0, len(requests))
	for _, r := range requests {
		rows = append(rows, []string{
			r.ID,
			r.Mentee.FirstName + " " + r.Mentee.LastName,
			r.Mentee.Email,
			r.Topic,
			r.Date,
		})
	}
	return renderTable([]string{"ID", "MENTEE", "EMAIL", "TOPIC", "DATE"}, rows)
}

// RenderUsers renders the administrator's account listing.
func RenderUsers(users []platform.User) string {
	if len(users) == 0 {
		return DefaultStyles().Muted.Render("No accounts found.") + "\n"
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			u.FirstName + " " + u.LastName,
			u.Email,
			u.Role(),
			u.Occupation,
		})
	}
	return renderTable([]string{"NAME", "EMAIL", "ROLE", "OCCUPATION"}, rows)
}

func renderStars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// renderTable lays out rows under headers with two-space column gaps.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len([]rune(cell)) > widths[i] {
				widths[i] = len([]rune(cell))
			}
		}
	}

	styles := DefaultStyles()

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(styles.Value.Render(pad(h, widths[i])))
		if i < len(headers)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			b.WriteString(pad(cell, widths[i]))
			if i < len(row)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	gap := width - len([]rune(s))
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
