package placeholder

// Company is the employer nested in a User record.
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

// User is an author of posts.
type User struct {
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Company  Company `json:"company"`
	ID       int     `json:"id"`
}

// Post is a blog-style entry written by a user.
type Post struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
}

// Comment is a reader comment on a post.
type Comment struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
	ID     int    `json:"id"`
	PostID int    `json:"postId"`
}
