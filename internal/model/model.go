// Package model defines the entity types shared by the public site and the
// admin back office. All rows live in PostgreSQL; these structs are the
// transient in-memory copies moved through the HTTP layer.
package model

import "time"

// Project is a portfolio entry rendered on the public Projects page and
// managed through the admin console.
type Project struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	Link        string   `json:"link"`
}

// ProjectInput carries the mutable fields of a Project.
type ProjectInput struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	Link        string   `json:"link"`
}

// Job is an open position listed on the Careers page.
type Job struct {
	ID           int64     `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Title        string    `json:"title"`
	Type         string    `json:"type"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	SalaryRange  string    `json:"salary_range"`
	Category     string    `json:"category"`
}

// JobInput carries the mutable fields of a Job.
type JobInput struct {
	Title        string   `json:"title"`
	Type         string   `json:"type"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	SalaryRange  string   `json:"salary_range"`
	Category     string   `json:"category"`
}

// ContactMessage is a visitor submission from the contact form.
// There is no update operation: messages are created once and later
// read or deleted by an admin.
type ContactMessage struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
}

// ContactMessageInput carries the fields a visitor submits.
type ContactMessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// JobApplication is a visitor's application to a specific Job.
// JobTitle is a snapshot of the job's title taken at submission time;
// it is never re-joined against the jobs table afterwards.
type JobApplication struct {
	ID            int64     `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	JobID         int64     `json:"job_id"`
	JobTitle      string    `json:"job_title"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	ResumeLink    string    `json:"resume_link"`
	PortfolioLink string    `json:"portfolio_link"`
}

// JobApplicationInput carries the fields stored for a new application.
type JobApplicationInput struct {
	JobID         int64  `json:"job_id"`
	JobTitle      string `json:"job_title"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ResumeLink    string `json:"resume_link"`
	PortfolioLink string `json:"portfolio_link"`
}

// TalentPoolEntry is an email opted into future-role notifications.
type TalentPoolEntry struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Email     string    `json:"email"`
}

// BlogPost is an article on the public blog. Only published posts are
// listed publicly; the admin console manages the full lifecycle.
type BlogPost struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Excerpt   string    `json:"excerpt"`
	Image     string    `json:"image"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	Published bool      `json:"published"`
}

// BlogPostInput carries the mutable fields of a BlogPost.
type BlogPostInput struct {
	Slug      string   `json:"slug"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Excerpt   string   `json:"excerpt"`
	Image     string   `json:"image"`
	Author    string   `json:"author"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
}
