package version

import (
	"fmt"
	"io"

	"github.com/bokysan/keycodec/internal/codec"
	"github.com/bokysan/keycodec/internal/version"
	"github.com/k0kubun/go-ansi"
)

const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	BackgroundBlue = "\x1b[44m"
)

// Command prints the version and build details. Output goes through an ANSI aware writer unless set.
type Command struct {
	Output io.Writer `no-flag:"true" yaml:"-"`
}

func NewCommand() *Command {
	return &Command{}
}

func (i *Command) String() string {
	return "Version details"
}

func (i *Command) out() io.Writer {
	if i.Output == nil {
		return ansi.NewAnsiStdout()
	}
	return i.Output
}

//goland:noinspection GoUnhandledErrorResult
func (i *Command) Execute(args []string) error {
	w := i.out()
	PrintVersion(w)
	fmt.Fprintf(w, DarkGray+" Key format  "+White+"%d chars -> %d bytes"+Reset+"\n", codec.KeyLength, codec.EncodedLength)
	if version.GitTag != "" {
		fmt.Fprintf(w, DarkGray+" Git tag     "+White+"%+v"+Reset+"\n", version.GitTag)
	}
	if version.GitBranch != "" {
		fmt.Fprintf(w, DarkGray+" Git branch  "+White+"%+v"+Reset+"\n", version.GitBranch)
	}
	if version.GitState != "" {
		fmt.Fprintf(w, DarkGray+" Git state   "+White+"%+v"+Reset+"\n", version.GitState)
	}
	if version.GoVersion != "" {
		fmt.Fprintf(w, DarkGray+" Go version  "+White+"%+v"+Reset+"\n", version.GoVersion)
	}
	return nil
}

//goland:noinspection GoUnhandledErrorResult
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, Bold+BackgroundBlue+
		LightGray+" KEYCODEC - fixed width key tokens "+White+"%s"+LightGray+" "+Reset+"\n"+
		DarkGray+" Built on    "+White+"%+v\n"+
		DarkGray+" Git version "+White+"%+v"+Reset+"\n",
		version.AppVersion(), version.BuildDate, version.GitCommit)
}
