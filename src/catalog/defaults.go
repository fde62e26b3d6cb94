package catalog

// Categories in menu order.
var builtinCategories = []string{
	"fix", "feat", "docs", "refactor", "perf", "style",
	"chore", "test", "ci", "build", "revert", "wip",
}

var defaultTemplates = map[string][]string{
	"fix": {
		"fix: resolve [issue] in [component]",
		"fix: correct [functionality] in [module]",
		"fix: adjust validation in [form]",
		"fix: repair [process] failure in [component]",
	},
	"feat": {
		"feat: add [feature] to [component]",
		"feat: implement [functionality] in [module]",
		"feat: create [component] for [section]",
		"feat: integrate [service/api] into [module]",
	},
	"docs": {
		"docs: update [document] for [module]",
		"docs: add examples for [feature]",
		"docs: fix typo in [file]",
		"docs: improve explanation of [section]",
	},
	"refactor": {
		"refactor: improve structure of [component]",
		"refactor: simplify [functionality] logic",
		"refactor: remove duplicate code in [module]",
		"refactor: reorganize [folder]",
	},
	"perf": {
		"perf: optimize [process] in [component]",
		"perf: reduce load time of [section]",
		"perf: cache [functionality] results in [module]",
	},
	"style": {
		"style: format [filetype] files in [folder]",
		"style: clean up [component] styling",
		"style: apply lint fixes to [module]",
	},
	"chore": {
		"chore: update [dependency]",
		"chore: configure [platform] environment",
		"chore: adjust settings for [module]",
		"chore: clean up old code in [folder]",
	},
	"test": {
		"test: add tests for [component]",
		"test: cover [functionality] edge cases in [module]",
		"test: fix flaky [test]",
	},
	"ci": {
		"ci: update [pipeline] workflow",
		"ci: add [platform] build step",
		"ci: fix [pipeline] configuration",
	},
	"build": {
		"build: bump [dependency] version",
		"build: update [platform] build configuration",
		"build: adjust [filetype] compilation for [module]",
	},
	"revert": {
		"revert: undo [change] in [component]",
		"revert: roll back [feature]",
	},
	"wip": {
		"wip: progress on [feature]",
		"wip: start [component] rework",
		"wip: save [change] in [module]",
	},
}
