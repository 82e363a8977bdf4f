package screening

import "github.com/hireonhq/hireon-cli/internal/api"

// Error classification stays in the api package with the error type itself;
// these aliases keep call sites in the coordinator short.

func isNoScreening(err error) bool { return api.IsNoScreening(err) }

func isNotFound(err error) bool { return api.IsNotFound(err) }
