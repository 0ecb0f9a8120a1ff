// Package frontmatter locates the YAML frontmatter block at the top of a
// Markdown file, such as a gitstory ticket.
//
// Frontmatter is delimited by lines containing only "---" at the start and
// end. Both LF and CRLF line endings are handled.
//
//	matter, body, err := frontmatter.Split(data)
//	if errors.Is(err, frontmatter.ErrNoFrontmatter) {
//		// plain Markdown
//	}
package frontmatter
