package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grovetools/navtree/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a new error handler writing to stderr
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a message for err based on its error code and returns err
// unchanged.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}

	var navErr *errors.NavError
	errors.As(err, &navErr)
	detail := func(key string) interface{} {
		if navErr == nil || navErr.Details == nil {
			return nil
		}
		return navErr.Details[key]
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeManifestNotFound:
		fmt.Fprintf(h.Out, "%s no sidebar manifest found\n", errorStyle.Render("✗"))
		fmt.Fprintf(h.Out, "Create sidebars.yml or pass a manifest path. Set 'manifest' in navtree.yml to use another location.\n")

	case errors.ErrCodeNavValidation:
		fmt.Fprintf(h.Out, "%s invalid sidebar in collection '%v'\n", errorStyle.Render("✗"), detail("collection"))
		if node := detail("node"); node != nil {
			fmt.Fprintf(h.Out, "  %s %v\n", mutedStyle.Render("at:"), node)
			fmt.Fprintf(h.Out, "  %s %v\n", mutedStyle.Render("reason:"), detail("reason"))
		} else if navErr != nil && navErr.Cause != nil {
			fmt.Fprintf(h.Out, "  %v\n", navErr.Cause)
		}

	case errors.ErrCodeSchemaValidation:
		fmt.Fprintf(h.Out, "%s manifest does not match the sidebar schema\n", errorStyle.Render("✗"))
		if navErr != nil && navErr.Cause != nil {
			for _, line := range strings.Split(navErr.Cause.Error(), "\n") {
				if strings.HasPrefix(line, "- ") {
					fmt.Fprintf(h.Out, "  %s\n", line)
				}
			}
		}

	case errors.ErrCodeCollectionNotFound:
		fmt.Fprintf(h.Out, "%s collection '%v' not found\n", errorStyle.Render("✗"), detail("collection"))
		if available, ok := detail("available").([]string); ok && len(available) > 0 {
			fmt.Fprintf(h.Out, "Available collections: %s\n", strings.Join(available, ", "))
		}

	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(h.Out, "%s configuration not found: %v\n", errorStyle.Render("✗"), detail("path"))

	default:
		fmt.Fprintf(h.Out, "%s Error: %v\n", errorStyle.Render("✗"), err)
	}

	if h.Verbose && navErr != nil {
		fmt.Fprintf(h.Out, "\nError details:\n%s\n", navErr.ToJSON())
	}
	return err
}
