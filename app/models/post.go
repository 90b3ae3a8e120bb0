package models

// Clone returns a copy of the post. The resolved author is shared,
// not copied; it is transient read-side state.
func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

// Merged combines the patch with an existing post and returns the
// resulting full input. Nil patch fields keep the existing values.
func (p PostPatch) Merged(existing *Post) PostInput {
	in := PostInput{
		Title:    existing.Title,
		Content:  existing.Content,
		AuthorID: existing.AuthorID,
	}
	if p.Title != nil {
		in.Title = *p.Title
	}
	if p.Content != nil {
		in.Content = *p.Content
	}
	if p.AuthorID != nil {
		in.AuthorID = *p.AuthorID
	}
	return in
}
