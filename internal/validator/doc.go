// Package validator checks gitstory configuration and ticket files.
//
// Only syntax is checked: content must parse as YAML, or as TOML for .toml
// files (see [ValidateFile]). Tickets are Markdown files whose frontmatter
// must parse as YAML (see [ValidateTicketFile]). Schema and semantic rules
// are not enforced here.
//
// # Basic Usage
//
//	if !validator.ValidateYAML(text) {
//		// not parseable
//	}
//
//	res := validator.ValidateYAMLFile(".gitstory/workflow.yaml")
//	switch res.Kind {
//	case validator.KindValid:
//	case validator.KindNotFound:
//	case validator.KindSyntaxError, validator.KindIOError:
//		fmt.Println(res.Message())
//	}
package validator
