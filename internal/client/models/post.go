package models

// Photo is an image attached to a post.
type Photo struct {
	ID     int64  `json:"id"`
	URL    string `json:"url"`
	Order  int    `json:"order"`
	PostID int64  `json:"post_id"`
}

// PhotoCreate is the photo payload sent when creating or updating a post.
type PhotoCreate struct {
	URL   string `json:"url"`
	Order int    `json:"order"`
}

// Post is a bread post as returned by the server. Posts are owned
// transiently by the command that fetched them and discarded on refetch.
type Post struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	BreadType   string  `json:"bread_type"`
	UserID      int64   `json:"user_id"`
	CreatedAt   string  `json:"created_at"`
	Photos      []Photo `json:"photos"`
}

// PostCreate is the payload for creating or updating a post.
type PostCreate struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	BreadType   string        `json:"bread_type"`
	Photos      []PhotoCreate `json:"photos"`
}
