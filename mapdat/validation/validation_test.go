package validation

import (
	"strings"
	"testing"

	"github.com/manicmap/mapdat-go/mapdat/core"
	"github.com/manicmap/mapdat-go/mapdat/database"
	"github.com/manicmap/mapdat-go/mapdat/diagnostics"
)

func runValidation(t *testing.T, source string) *diagnostics.Diagnostics {
	t.Helper()
	diags := diagnostics.NewDiagnostics()
	db := database.NewMapDatabase(core.NewSourceFile("level.dat", source), &diags)
	Validate(db, &diags)
	return &diags
}

func scriptOnly(body string) string {
	return "script{\n" + body + "}\n"
}

func errorMessages(diags *diagnostics.Diagnostics) []string {
	out := make([]string, 0, len(diags.Errors()))
	for _, e := range diags.Errors() {
		out = append(out, e.Message())
	}
	return out
}

func containsMessage(messages []string, fragment string) bool {
	for _, m := range messages {
		if strings.Contains(m, fragment) {
			return true
		}
	}
	return false
}

func warningMessages(diags *diagnostics.Diagnostics) []string {
	out := make([]string, 0, len(diags.Warnings()))
	for _, w := range diags.Warnings() {
		out = append(out, w.Message())
	}
	return out
}

func infoMessages(diags *diagnostics.Diagnostics) []string {
	out := make([]string, 0, len(diags.Infos()))
	for _, i := range diags.Infos() {
		out = append(out, i.Message())
	}
	return out
}

func TestDuplicateTriggersBothWarn(t *testing.T) {
	diags := runValidation(t, scriptOnly(`Reward::
msg:A;

Penalty::
msg:B;

when(enter:5,5)[Reward];
when(enter:5,5)[Penalty];
`))
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Errors())
	}
	warnings := warningMessages(diags)
	if len(warnings) != 2 {
		t.Fatalf("each racing declaration must warn, got %v", warnings)
	}
	for _, w := range warnings {
		if !strings.Contains(w, `"enter:5,5"`) || !strings.Contains(w, "more than once") {
			t.Errorf("warning = %q", w)
		}
	}
}

func TestDuplicateTimeTriggersAreAllowed(t *testing.T) {
	diags := runValidation(t, scriptOnly(`Reward::
msg:A;

when(time:30)[Reward];
when(time:30)[Reward];
`))
	if len(diags.Warnings()) != 0 {
		t.Fatalf("time triggers should not warn: %v", warningMessages(diags))
	}
}

func TestComparisonHeadResolvesNames(t *testing.T) {
	diags := runValidation(t, scriptOnly(`bool HasKey=true

Open::
msg:Unlocked;

when(crystals>50)((HasKey==true))[Open];
`))
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Errors())
	}
}

func TestComparisonHeadUndeclaredName(t *testing.T) {
	diags := runValidation(t, scriptOnly(`Open::
msg:Unlocked;

when(Mystery>50)[Open];
`))
	if !containsMessage(errorMessages(diags), `"Mystery" is not a declared variable or macro`) {
		t.Fatalf("errors = %v", errorMessages(diags))
	}
}

func TestReservedWordDeclarations(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   string
	}{
		{"macro as variable", "int time=0\n", `"time" is a reserved macro`},
		{"trigger kind as variable", "int enter=0\n", `"enter" is a reserved trigger`},
		{"command as chain", "msg::\ncrystals:1;\n", `"msg" is a reserved command`},
		{"type as variable", "int miner=0\n", `"miner" is a reserved type`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			diags := runValidation(t, scriptOnly(tc.source))
			if !containsMessage(errorMessages(diags), tc.want) {
				t.Errorf("errors = %v, want one containing %q", errorMessages(diags), tc.want)
			}
		})
	}
}

func TestInitAndTickAreNotReservedWordErrors(t *testing.T) {
	diags := runValidation(t, scriptOnly(`init::
msg:Hello;

tick::
crystals:1;
`))
	if diags.HasErrors() {
		t.Fatalf("init/tick must be declarable: %v", diags.Errors())
	}
}

func TestReservedChainAsTriggerTarget(t *testing.T) {
	diags := runValidation(t, scriptOnly(`init::
msg:Hello;

when(time:5)[init];
`))
	if !containsMessage(errorMessages(diags), "runs automatically") {
		t.Fatalf("errors = %v", errorMessages(diags))
	}
}

func TestDuplicateBindingIsOneError(t *testing.T) {
	source := `miners{
Miner,1,1
}
script{
miner First=0
miner Second=0
}
`
	diags := runValidation(t, source)
	errs := errorMessages(diags)
	if len(errs) != 1 || !strings.Contains(errs[0], `already bound by "First"`) {
		t.Fatalf("errors = %v", errs)
	}
}

func TestSameKeyDifferentTypesIsNotADuplicateBinding(t *testing.T) {
	source := `miners{
Miner,1,1
}
vehicles{
SmallDigger,2,2
}
script{
miner Digger=0
vehicle Truck=0
}
`
	diags := runValidation(t, source)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Errors())
	}
}

func TestCaptureTargetErrors(t *testing.T) {
	diags := runValidation(t, scriptOnly(`Grab::
lastminer:Nobody;
`))
	if !containsMessage(errorMessages(diags), "not a declared object variable") {
		t.Fatalf("errors = %v", errorMessages(diags))
	}
}

func TestCaptureTypeMismatch(t *testing.T) {
	diags := runValidation(t, scriptOnly(`vehicle Truck

Grab::
save:Truck;
`))
	if !containsMessage(errorMessages(diags), "captures a miner") {
		t.Fatalf("errors = %v", errorMessages(diags))
	}
}

func TestCaptureOfMatchingTypeIsClean(t *testing.T) {
	diags := runValidation(t, scriptOnly(`vehicle Truck

Grab::
lastvehicle:Truck;
`))
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Errors())
	}
}

func TestReadOnlyMacroAssignment(t *testing.T) {
	diags := runValidation(t, scriptOnly(`Cheat::
time:0;
`))
	if !containsMessage(errorMessages(diags), `"time" is read-only`) {
		t.Fatalf("errors = %v", errorMessages(diags))
	}
}

func TestReadWriteMacroAssignmentIsClean(t *testing.T) {
	diags := runValidation(t, scriptOnly(`Reward::
crystals:5;
air:100;
`))
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Errors())
	}
}

func TestUndeclaredConditionVariable(t *testing.T) {
	diags := runValidation(t, scriptOnly(`Reward::
msg:A;

when(time:1)((Missing>3))[Reward];
`))
	if !containsMessage(errorMessages(diags), `"Missing" is not a declared variable or macro`) {
		t.Fatalf("errors = %v", errorMessages(diags))
	}
}

func TestMacroInConditionIsClean(t *testing.T) {
	diags := runValidation(t, scriptOnly(`Reward::
msg:A;

when(time:1)((crystals>=10 and miners>0))[Reward];
`))
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Errors())
	}
}

func TestUndeclaredEventTarget(t *testing.T) {
	diags := runValidation(t, scriptOnly(`when(time:1)[Nowhere];
`))
	if !containsMessage(errorMessages(diags), `"Nowhere" is not a declared event chain`) {
		t.Fatalf("errors = %v", errorMessages(diags))
	}
}

func TestInlineCommandEventIsClean(t *testing.T) {
	diags := runValidation(t, scriptOnly(`when(time:1)[msg:Hello];
`))
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %v", diags.Errors())
	}
}

func TestUnusedChainLint(t *testing.T) {
	diags := runValidation(t, scriptOnly(`Orphan::
msg:A;
`))
	infos := infoMessages(diags)
	if len(infos) != 1 || !strings.Contains(infos[0], `"Orphan" is never invoked`) {
		t.Fatalf("infos = %v", infos)
	}
}

func TestChainCalledByAnotherChainIsUsed(t *testing.T) {
	diags := runValidation(t, scriptOnly(`Helper::
msg:A;

Main::
Helper;

when(time:1)[Main];
`))
	if len(diags.Infos()) != 0 {
		t.Fatalf("unexpected lints: %v", infoMessages(diags))
	}
}

func TestEarlyExitLint(t *testing.T) {
	diags := runValidation(t, scriptOnly(`Drain::
~crystals:1;
msg:Paid;

when(time:1)[Drain];
`))
	infos := infoMessages(diags)
	if len(infos) != 1 || !strings.Contains(infos[0], "~ guard") {
		t.Fatalf("infos = %v", infos)
	}
}

func TestTrailingFailureGuardDoesNotLint(t *testing.T) {
	diags := runValidation(t, scriptOnly(`Drain::
msg:Paying;
~crystals:1;

when(time:1)[Drain];
`))
	if len(diags.Infos()) != 0 {
		t.Fatalf("unexpected lints: %v", infoMessages(diags))
	}
}

func placeChain(count int) string {
	var b strings.Builder
	b.WriteString("Flood::\n")
	b.WriteString(strings.Repeat("place:1,1,1;\n", count))
	b.WriteString("\nwhen(enter:5,5)[Flood];\n")
	return scriptOnly(b.String())
}

func TestBatchLimitWarning(t *testing.T) {
	diags := runValidation(t, placeChain(700))
	warnings := warningMessages(diags)
	if len(warnings) != 1 || !strings.Contains(warnings[0], "700 tile writes") {
		t.Fatalf("warnings = %v", warnings)
	}
}

func TestBatchUnderLimitIsSilent(t *testing.T) {
	diags := runValidation(t, placeChain(600))
	if len(diags.Warnings()) != 0 {
		t.Fatalf("600 writes must not warn: %v", warningMessages(diags))
	}
}

func TestBatchCountFollowsChainCalls(t *testing.T) {
	var b strings.Builder
	b.WriteString("Half::\n")
	b.WriteString(strings.Repeat("place:1,1,1;\n", 320))
	b.WriteString("\nMain::\nHalf;\nHalf;\n")
	b.WriteString("\nwhen(enter:5,5)[Main];\n")

	diags := runValidation(t, scriptOnly(b.String()))
	warnings := warningMessages(diags)
	if len(warnings) != 1 || !strings.Contains(warnings[0], "640 tile writes") {
		t.Fatalf("warnings = %v", warnings)
	}
}

func TestBatchWalkSurvivesRecursion(t *testing.T) {
	diags := runValidation(t, scriptOnly(`Loop::
place:1,1,1;
Loop;

when(enter:5,5)[Loop];
`))
	if len(diags.Warnings()) != 0 {
		t.Fatalf("recursive chain must count each body once: %v", warningMessages(diags))
	}
}

func TestFluidMixWarning(t *testing.T) {
	diags := runValidation(t, scriptOnly(`Flood::
place:1,1,6;
place:2,2,1;

when(enter:5,5)[Flood];
`))
	warnings := warningMessages(diags)
	if len(warnings) != 1 || !strings.Contains(warnings[0], "nondeterministic order") {
		t.Fatalf("warnings = %v", warnings)
	}
}

func TestAllFluidWritesDoNotWarn(t *testing.T) {
	diags := runValidation(t, scriptOnly(`Flood::
place:1,1,6;
place:2,2,11;

when(enter:5,5)[Flood];
`))
	if len(diags.Warnings()) != 0 {
		t.Fatalf("all-fluid body must not warn: %v", warningMessages(diags))
	}
}

func TestDimensionMismatchWarning(t *testing.T) {
	source := `info{
rowcount:3
colcount:3
}
tiles{
1,1,
1,1,
}
`
	diags := runValidation(t, source)
	warnings := warningMessages(diags)
	if len(warnings) != 1 || !strings.Contains(warnings[0], "rowcount 3") {
		t.Fatalf("warnings = %v", warnings)
	}
}

func TestMatchingDimensionsAreSilent(t *testing.T) {
	source := `info{
rowcount:2
colcount:2
}
tiles{
1,1,
1,1,
}
`
	diags := runValidation(t, source)
	if len(diags.Warnings()) != 0 {
		t.Fatalf("unexpected warnings: %v", warningMessages(diags))
	}
}

func TestUnknownObjectiveBuildingType(t *testing.T) {
	source := `objectives{
building:Fortress_C
}
`
	diags := runValidation(t, source)
	if !containsMessage(warningMessages(diags), "not a known") {
		t.Fatalf("warnings = %v", warningMessages(diags))
	}
}

func TestValidationNeverPanics(t *testing.T) {
	corpus := []string{
		"",
		"script{",
		"script{\nwhen(enter:5,5)(crystals>0)[Go];\n}",
		"script{\nint\n}",
		"script{\nGo::\n}",
		"script{\nGo::\nplace:;\n}",
		"script{\nwhen[];\n}",
		"tiles{\n1,\n1,1,\n}",
		"info{\nrowcount:x\n}",
		"miners{\n,,,\n}",
		"objectives{\nbuilding:\n}",
		"script{\nminer A=99\nsave:A;\n}",
	}
	for _, source := range corpus {
		diags := diagnostics.NewDiagnostics()
		db := database.NewMapDatabase(core.NewSourceFile("level.dat", source), &diags)
		Validate(db, &diags)
	}
}
