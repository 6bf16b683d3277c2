package host

import "github.com/abdul-hamid-achik/plugopts/packages/options"

// Item is the minimal handle a host framework passes to plugin hooks for one
// running test case: a unique identifier plus the resolved configuration.
type Item struct {
	ID  string
	Cfg *Config
}

// NodeID returns the unique test identifier, e.g. "api.http::getUser[1]".
func (i *Item) NodeID() string {
	return i.ID
}

// Config returns the resolved configuration for the run this item belongs to.
func (i *Item) Config() options.Config {
	return i.Cfg
}
