package conf_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"conf2env/internal/conf"
)

func TestParse(t *testing.T) {
	r := require.New(t)

	r.Equal(conf.Items{"KEY": "value"}, conf.Parse("KEY=value"))
	r.Equal(conf.Items{"A": "1", "B": "2", "D": "4"}, conf.Parse("A=1\nB=2\n# C=3\nD=4"))
}

func TestParseEmpty(t *testing.T) {
	r := require.New(t)

	r.Empty(conf.Parse(""))
	r.Empty(conf.Parse("# comment only\n"))
	r.Empty(conf.Parse("   \n\t\n"))
}

func TestParseTrim(t *testing.T) {
	r := require.New(t)

	r.Equal(conf.Items{"KEY": "value"}, conf.Parse("  KEY  =  value  "))
	r.Equal(conf.Items{"KEY3": "value with spaces trimmed"}, conf.Parse("   KEY3   =   value with spaces trimmed"))
}

func TestParseInlineComment(t *testing.T) {
	r := require.New(t)

	r.Equal(conf.Items{"KEY": "value"}, conf.Parse("KEY=value # trailing comment"))
	r.Equal(conf.Items{"KEY": "value"}, conf.Parse("KEY=value#comment"))
	// Comment before = turns the line malformed.
	r.Empty(conf.Parse("KEY # =value"))
}

func TestParseMalformed(t *testing.T) {
	r := require.New(t)

	r.Empty(conf.Parse("no equals sign here"))
	r.Empty(conf.Parse("=value"))
	r.Empty(conf.Parse("   =   value"))
	// Empty values are fine.
	r.Equal(conf.Items{"KEY": ""}, conf.Parse("KEY="))
}

func TestParseLongLine(t *testing.T) {
	r := require.New(t)

	// Values beyond bufio.MaxScanTokenSize must not truncate the parse.
	long := strings.Repeat("x", 70000)
	items := conf.Parse("BLOB=" + long + "\nKEY=value")
	r.Equal(long, items["BLOB"])
	r.Equal("value", items["KEY"])
}

func TestParseDuplicates(t *testing.T) {
	r := require.New(t)

	// Last line wins.
	r.Equal(conf.Items{"KEY": "2"}, conf.Parse("KEY=1\nKEY=2"))
}

func TestFormatRoundTrip(t *testing.T) {
	r := require.New(t)

	items := conf.Items{"B": "2", "A": "1", "EMPTY": ""}
	r.Equal("A=1\nB=2\nEMPTY=\n", conf.Format(items))
	r.Equal(items, conf.Parse(conf.Format(items)))
}

func TestKeys(t *testing.T) {
	r := require.New(t)

	items := conf.Items{"Z": "", "A": "", "M": ""}
	r.Equal([]string{"A", "M", "Z"}, items.Keys())
}

func TestFilter(t *testing.T) {
	r := require.New(t)

	items := conf.Items{"HOST": "localhost", "PORT": "5432", "SECRET": "s3cret"}
	r.Equal(conf.Items{"HOST": "localhost", "PORT": "5432"}, items.Filter([]string{"HOST", "PORT"}))
	r.Empty(items.Filter([]string{"MISSING"}))
	r.Equal(items, items.Filter(nil))
}

func TestPrefixed(t *testing.T) {
	r := require.New(t)

	items := conf.Items{"HOST": "localhost"}
	r.Equal(conf.Items{"APP_HOST": "localhost"}, items.Prefixed("APP_"))
	r.Equal(items, items.Prefixed(""))
}

func TestMerge(t *testing.T) {
	r := require.New(t)

	base := conf.Items{"A": "1", "B": "1"}
	merged := base.Merge(conf.Items{"B": "2"}, conf.Items{"C": "3"})
	r.Equal(conf.Items{"A": "1", "B": "2", "C": "3"}, merged)
	// Inputs are left untouched.
	r.Equal(conf.Items{"A": "1", "B": "1"}, base)
}
