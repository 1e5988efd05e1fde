package commandline

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/WangWilly/unisat-connector/pkgs/commonpkg/clients/unisatclient"
	"github.com/gookit/color"
)

////////////////////////////////////////////////////////////////////////////////
// Subcommands
////////////////////////////////////////////////////////////////////////////////

const (
	CMD_ENDPOINTS = "endpoints"
	CMD_JOURNAL   = "journal"
)

var ErrNoCommand = errors.New("no endpoint given")

////////////////////////////////////////////////////////////////////////////////
// Endpoint Invocation
////////////////////////////////////////////////////////////////////////////////

// Invocation is an endpoint picked from the catalogue plus its path arguments
type Invocation struct {
	Endpoint unisatclient.Endpoint
	PathArgs []string
}

// ParseInvocation reads the positional arguments `<endpoint> [path args...]`
func ParseInvocation(args []string) (*Invocation, error) {
	if len(args) == 0 {
		return nil, ErrNoCommand
	}

	ep, ok := unisatclient.LookupEndpoint(args[0])
	if !ok {
		return nil, fmt.Errorf("%w: %s", unisatclient.ErrUnknownEndpoint, args[0])
	}
	pathArgs := args[1:]
	if len(pathArgs) != len(ep.PathParams) {
		return nil, fmt.Errorf("%w: usage: %s", unisatclient.ErrPathArguments, ep.Usage())
	}

	return &Invocation{Endpoint: ep, PathArgs: pathArgs}, nil
}

////////////////////////////////////////////////////////////////////////////////
// Endpoint Flag
////////////////////////////////////////////////////////////////////////////////

// EndpointArg is a flag.Value taking mainnet, testnet, whitelist or a base url
type EndpointArg struct {
	value string
}

// Set implements flag.Value interface for EndpointArg
func (e *EndpointArg) Set(str string) error {
	resolved := unisatclient.ResolveEndpoint(str)
	u, err := url.Parse(resolved)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("invalid endpoint %q", str)
	}
	e.value = strings.TrimSpace(str)
	return nil
}

// String implements flag.Value interface for EndpointArg
func (e *EndpointArg) String() string {
	return e.value
}

////////////////////////////////////////////////////////////////////////////////
// Listing
////////////////////////////////////////////////////////////////////////////////

// PrintEndpoints writes one synopsis line per catalogue entry
func PrintEndpoints(w io.Writer) {
	endpoints := unisatclient.Endpoints()
	width := 0
	for _, ep := range endpoints {
		width = max(width, len(ep.Usage()))
	}
	for _, ep := range endpoints {
		usage := ep.Usage()
		fmt.Fprintf(w, "  %s%s  %s\n",
			color.FgLightBlue.Render(usage),
			strings.Repeat(" ", width-len(usage)),
			ep.Description,
		)
	}
}
