package controller

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/deployboard/cli/constants"
	"github.com/deployboard/cli/ui"
)

// ResolvePage returns the URL for a named page, defaulting to the dashboard
func (c *Controller) ResolvePage(page string) (string, error) {
	if page == "" {
		page = "dashboard"
	}
	pattern, ok := constants.OpenURLMap[page]
	if !ok {
		return "", fmt.Errorf("%s\nKnown pages: %s", ui.RedText(fmt.Sprintf("Unknown page %q.", page)), strings.Join(PageNames(), ", "))
	}
	if strings.Contains(pattern, "%s") {
		return fmt.Sprintf(pattern, c.cfg.DashboardURL), nil
	}
	return pattern, nil
}

// OpenInBrowser opens the named page in the default browser
func (c *Controller) OpenInBrowser(ctx context.Context, page string) (string, error) {
	url, err := c.ResolvePage(page)
	if err != nil {
		return "", err
	}
	return url, c.openURL(url)
}

func PageNames() []string {
	names := make([]string, 0, len(constants.OpenURLMap))
	for name := range constants.OpenURLMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
