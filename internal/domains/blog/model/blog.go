package model

import (
	"github.com/google/uuid"
)

// Blog is a post entity as stored. Title and content are nullable on
// purpose: creation passes the request body through without validation
// and the schema is the only enforcement.
type Blog struct {
	ID       uuid.UUID `json:"id"`
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	AuthorID string    `json:"authorId"`
}

// Author is the display-only author projection; the author relation is a
// weak reference, nothing but the name is ever read from it.
type Author struct {
	Name string `json:"name"`
}

// BlogWithAuthor is the read projection for list-all and get-by-id:
// exactly {id, title, content, author:{name}}, nothing more.
type BlogWithAuthor struct {
	ID      uuid.UUID `json:"id"`
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Author  Author    `json:"author"`
}
