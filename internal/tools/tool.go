package tools

import "strings"

type Method string

const (
	// MethodScript downloads a vendor install script and runs it with bash.
	// The binary lands in the tool directory.
	MethodScript Method = "install script"
	// MethodPackage runs a package manager. The binary lands on PATH.
	MethodPackage Method = "package manager"
)

// InstallPlan is how a tool is acquired on one platform. Arguments may
// contain the {version} and {dir} placeholders.
type InstallPlan struct {
	Method    Method
	ScriptURL string
	Command   []string
}

func (p InstallPlan) command(version, dir string) Command {
	args := make([]string, 0, len(p.Command))
	for _, a := range p.Command {
		a = strings.ReplaceAll(a, "{version}", version)
		a = strings.ReplaceAll(a, "{dir}", dir)
		args = append(args, a)
	}
	return Command{Name: args[0], Args: args[1:]}
}

// Tool is an external static-analysis binary with its per-GOOS install plans.
type Tool struct {
	Name  string
	Plans map[string]InstallPlan
}

func (t Tool) binary(goos string) string {
	if goos == "windows" {
		return t.Name + ".exe"
	}
	return t.Name
}

const actionlintScript = "https://raw.githubusercontent.com/rhysd/actionlint/main/scripts/download-actionlint.bash"

var Actionlint = Tool{
	Name: "actionlint",
	Plans: map[string]InstallPlan{
		"linux":   {Method: MethodScript, ScriptURL: actionlintScript},
		"darwin":  {Method: MethodScript, ScriptURL: actionlintScript},
		"windows": {Method: MethodPackage, Command: []string{"choco", "install", "actionlint", "--version", "{version}", "-y"}},
	},
}

var zizmorPip = InstallPlan{Method: MethodPackage, Command: []string{"pip", "install", "zizmor=={version}"}}

var Zizmor = Tool{
	Name: "zizmor",
	Plans: map[string]InstallPlan{
		"linux":   zizmorPip,
		"darwin":  zizmorPip,
		"windows": zizmorPip,
	},
}
