package launcher

import (
	"errors"
	"strings"
	"testing"

	"github.com/CompEvol/beastlauncher/internal/core/domain/launch"
	"github.com/CompEvol/beastlauncher/internal/core/testutil"
)

func TestIdentifyBundle(t *testing.T) {
	catalog := testutil.DefaultCatalog()

	for _, name := range catalog.Names() {
		paths := []string{
			"/Applications/" + name + "/Contents/MacOS/launcher",
			name,
			"relative/dir with space/" + name,
			"/Volumes/BEAST 2.5.2/" + name + "/Contents/MacOS/" + strings.TrimSuffix(name, ".app"),
		}
		for _, p := range paths {
			t.Run(p, func(t *testing.T) {
				b, at, err := IdentifyBundle(catalog, p)
				if err != nil {
					t.Fatalf("IdentifyBundle(%q) unexpected error = %v", p, err)
				}
				if b.Name != name {
					t.Errorf("IdentifyBundle(%q) = %q, want %q", p, b.Name, name)
				}
				if p[at:at+len(name)] != name {
					t.Errorf("IdentifyBundle(%q) offset %d does not point at %q", p, at, name)
				}
			})
		}
	}
}

func TestIdentifyBundle_PriorityOrder(t *testing.T) {
	catalog := testutil.DefaultCatalog()

	// Both names appear; the catalog lists BEAST.app before BEAUti.app.
	b, _, err := IdentifyBundle(catalog, "/Users/me/BEAUti.app/Contents/BEAST.app/Contents/MacOS/x")
	if err != nil {
		t.Fatalf("IdentifyBundle() unexpected error = %v", err)
	}
	if b.Name != "BEAST.app" {
		t.Errorf("IdentifyBundle() = %q, want BEAST.app", b.Name)
	}
}

func TestIdentifyBundle_NotRecognized(t *testing.T) {
	catalog := testutil.DefaultCatalog()

	tests := []string{
		"",
		"/usr/local/bin/beastlauncher",
		"/Applications/Beast.app/Contents/MacOS/Beast", // matching is case sensitive
		"/Applications/BEAST/Contents/MacOS/BEAST",
	}
	for _, argv0 := range tests {
		t.Run(argv0, func(t *testing.T) {
			_, at, err := IdentifyBundle(catalog, argv0)
			if !errors.Is(err, launch.ErrBundleNotRecognized) {
				t.Errorf("IdentifyBundle(%q) error = %v, want %v", argv0, err, launch.ErrBundleNotRecognized)
			}
			if at != -1 {
				t.Errorf("IdentifyBundle(%q) offset = %d, want -1", argv0, at)
			}
		})
	}
}

func TestBundleRoot(t *testing.T) {
	tests := []struct {
		name           string
		executablePath string
		argv0Suffix    string
		maxLen         int
		want           string
		wantErr        error
	}{
		{
			name:           "absolute argv0",
			executablePath: "/Applications/BEAST.app/Contents/MacOS/BEAST",
			argv0Suffix:    "BEAST.app/Contents/MacOS/BEAST",
			maxLen:         launch.DefaultMaxPathLength,
			want:           "/Applications/",
		},
		{
			name:           "path with spaces",
			executablePath: "/Applications/BEAST 2.7.7/BEAUti.app/Contents/MacOS/BEAUti",
			argv0Suffix:    "BEAUti.app/Contents/MacOS/BEAUti",
			maxLen:         launch.DefaultMaxPathLength,
			want:           "/Applications/BEAST 2.7.7/",
		},
		{
			name:           "suffix equals whole path",
			executablePath: "BEAST.app",
			argv0Suffix:    "BEAST.app",
			maxLen:         launch.DefaultMaxPathLength,
			want:           "",
		},
		{
			name:           "argv0 longer than executable path",
			executablePath: "/A/BEAST.app/x",
			argv0Suffix:    "BEAST.app/Contents/MacOS/BEAST/and/more",
			maxLen:         launch.DefaultMaxPathLength,
			wantErr:        launch.ErrArgv0TooLong,
		},
		{
			name:           "executable path over the limit",
			executablePath: "/" + strings.Repeat("a", 20) + "/BEAST.app/x",
			argv0Suffix:    "BEAST.app/x",
			maxLen:         16,
			wantErr:        launch.ErrPathTooLong,
		},
		{
			name:           "executable path exactly at the limit",
			executablePath: "/abc/BEAST.app/x",
			argv0Suffix:    "BEAST.app/x",
			maxLen:         len("/abc/BEAST.app/x"),
			want:           "/abc/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BundleRoot(tt.executablePath, tt.argv0Suffix, tt.maxLen)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("BundleRoot() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("BundleRoot() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("BundleRoot() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEscapeSpaces(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "/Applications/", want: "/Applications/"},
		{in: " ", want: `\ `},
		{in: "/Applications/BEAUti ", want: `/Applications/BEAUti\ `},
		{in: "/Volumes/My Disk/BEAST 2/", want: `/Volumes/My\ Disk/BEAST\ 2/`},
		{in: "a  b", want: `a\ \ b`},
		{in: "tab\tstays", want: "tab\tstays"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := EscapeSpaces(tt.in); got != tt.want {
				t.Errorf("EscapeSpaces(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEscapeSpaces_Properties(t *testing.T) {
	inputs := []string{
		"/Applications/",
		"/Users/jane doe/Applications/BEAST 2.7.7/",
		"   ",
		"no-spaces-at-all",
		" leading and trailing ",
		"ünïcödé path/",
	}

	for _, in := range inputs {
		out := EscapeSpaces(in)
		n := strings.Count(in, " ")

		if n == 0 && out != in {
			t.Errorf("EscapeSpaces(%q) = %q, want input unchanged", in, out)
		}
		if len(out) != len(in)+n {
			t.Errorf("EscapeSpaces(%q) length = %d, want %d", in, len(out), len(in)+n)
		}
		if got := strings.ReplaceAll(out, `\ `, " "); got != in {
			t.Errorf("EscapeSpaces(%q) altered more than spaces: %q", in, out)
		}
		for i := 0; i < len(out); i++ {
			if out[i] == ' ' && (i == 0 || out[i-1] != '\\') {
				t.Errorf("EscapeSpaces(%q) left an unescaped space at %d: %q", in, i, out)
			}
		}
	}
}

func TestEscapeRoot_TooLong(t *testing.T) {
	// 8 bytes raw, 10 once escaped.
	_, err := EscapeRoot("/a b c/x", 9)
	if !errors.Is(err, launch.ErrPathTooLong) {
		t.Errorf("EscapeRoot() error = %v, want %v", err, launch.ErrPathTooLong)
	}

	got, err := EscapeRoot("/a b c/x", 10)
	if err != nil {
		t.Fatalf("EscapeRoot() unexpected error = %v", err)
	}
	if got != `/a\ b\ c/x` {
		t.Errorf("EscapeRoot() = %q", got)
	}
}

func TestBuildCommand(t *testing.T) {
	catalog := testutil.DefaultCatalog()
	const jvm = "-Xmx4g -Dapple.laf.useScreenMenuBar=true -Djava.library.path=$JAVAROOT:/usr/local/lib -Duser.language=en"

	tests := []struct {
		bundle string
		root   string
		want   string
	}{
		{
			bundle: "AppLauncher.app",
			root:   "/Applications/",
			want:   "/Applications//jre1.8.0_161/bin/java " + jvm + " -cp /Applications/lib/launcher.jar beast.app.tools.AppLauncherLauncher",
		},
		{
			bundle: "BEAST.app",
			root:   "/Applications/",
			want:   "/Applications//jre1.8.0_161/bin/java " + jvm + " -cp /Applications/lib/launcher.jar beast.app.beastapp.BeastLauncher -window -options -working",
		},
		{
			bundle: "DensiTree.app",
			root:   "/Apps/",
			want:   "/Apps//jre1.8.0_161/bin/java " + jvm + " -jar /Apps/DensiTree.app/Contents/Java/DensiTree.jar viz.DensiTree",
		},
		{
			bundle: "LogCombiner.app",
			root:   "/Apps/",
			want:   "/Apps//jre1.8.0_161/bin/java " + jvm + " -cp /Apps/lib/launcher.jar beast.app.tools.LogCombinerLauncher",
		},
		{
			bundle: "TreeAnnotator.app",
			root:   "/Apps/",
			want:   "/Apps//jre1.8.0_161/bin/java " + jvm + " -cp /Apps/lib/launcher.jar beast.app.treeannotator.TreeAnnotatorLauncher",
		},
		{
			bundle: "BEAUti.app",
			root:   `/Applications/BEAUti\ `,
			want:   `/Applications/BEAUti\ /jre1.8.0_161/bin/java ` + jvm + ` -cp /Applications/BEAUti\ lib/launcher.jar beast.app.beauti.BeautiLauncher -capture`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.bundle, func(t *testing.T) {
			b, _, err := IdentifyBundle(catalog, tt.bundle)
			if err != nil {
				t.Fatalf("IdentifyBundle(%q) unexpected error = %v", tt.bundle, err)
			}
			if got := BuildCommand(catalog, b, tt.root); got != tt.want {
				t.Errorf("BuildCommand()\n got  %q\n want %q", got, tt.want)
			}
		})
	}
}

func TestBuildCommand_DensiTreeUsesJar(t *testing.T) {
	catalog := testutil.DefaultCatalog()
	b, _, _ := IdentifyBundle(catalog, "DensiTree.app")

	got := BuildCommand(catalog, b, "/Apps/")
	if !strings.Contains(got, "-jar /Apps/DensiTree.app/Contents/Java/DensiTree.jar") {
		t.Errorf("BuildCommand() = %q, want -jar clause", got)
	}
	if strings.Contains(got, "-cp") {
		t.Errorf("BuildCommand() = %q, want no -cp clause", got)
	}
}
