/*
Copyright 2022 by Milo Christiansen
Copyright 2024 by Samuel Loewen

This software is provided 'as-is', without any express or implied warranty. In
no event will the authors be held liable for any damages arising from the use of
this software.

Permission is granted to anyone to use this software for any purpose, including
commercial applications, and to alter it and redistribute it freely, subject to
the following restrictions:

1. The origin of this software must not be misrepresented; you must not claim
that you wrote the original software. If you use this software in a product, an
acknowledgment in the product documentation would be appreciated but is not
required.

2. Altered source versions must be plainly marked as such, and must not be
misrepresented as being the original software.

3. This notice may not be removed or altered from any source distribution.
*/

package tools

import (
	"flag"
	"fmt"
	"os"

	"github.com/samuellwn/aoc/client"
)

const (
	FlagRoot    = 1 << iota // The workspace root, holding the input cache and session file
	FlagSession             // Session token file, overrides the one under the root
	FlagBaseURL             // Site URL
)

// FlagSet is used to store the results from the common flags. Not all of these values will be valid, even if
// their flag is in the set.
type FlagSet struct {
	Root        string
	SessionFile string
	BaseURL     string

	Flags *flag.FlagSet
}

// CommonFlagSet returns a flagset filled out with your choice of several common flags.
func CommonFlagSet(flags int, usage string) *FlagSet {
	fs := &FlagSet{
		BaseURL: client.DefaultBaseURL,
		Flags:   flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}

	if flags&FlagRoot != 0 {
		fs.Flags.StringVar(&fs.Root, "root", FindRoot(), "The workspace root `dir`. Inputs are cached in <dir>/.data.")
	}

	if flags&FlagSession != 0 {
		fs.Flags.StringVar(&fs.SessionFile, "session", "", "Read the session token from `path` instead of <root>/aoc-client/.session.")
	}

	if flags&FlagBaseURL != 0 {
		fs.Flags.StringVar(&fs.BaseURL, "base", client.DefaultBaseURL, "The site `url`.")
	}

	fs.Flags.Usage = func() {
		fmt.Fprintln(fs.Flags.Output(), usage)
		fs.Flags.PrintDefaults()
	}

	return fs
}

// Parse parses the command line arguments.
func (fs *FlagSet) Parse() {
	fs.ParseArgs(os.Args[1:])
}

// ParseArgs parses args in place of the command line.
func (fs *FlagSet) ParseArgs(args []string) {
	fs.Flags.Parse(args)
}

// Args returns the positional arguments left after parsing.
func (fs *FlagSet) Args() []string {
	return fs.Flags.Args()
}

// Client returns a client built from the parsed flags. The session comes from the -session file if it was given,
// otherwise from the file under the root.
func (fs *FlagSet) Client() (*client.Client, error) {
	var c *client.Client
	var err error
	if fs.SessionFile != "" {
		var token []byte
		token, err = os.ReadFile(fs.SessionFile)
		if err != nil {
			return nil, err
		}
		c, err = client.New(fs.Root, string(token))
	} else {
		c, err = client.NewClient(fs.Root)
	}
	if err != nil {
		return nil, err
	}

	c.BaseURL = fs.BaseURL
	return c, nil
}
