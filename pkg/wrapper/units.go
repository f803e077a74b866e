package wrapper

import (
	"fmt"

	"github.com/OpenTraceLab/vhdlwrap/pkg/flatten"
	"github.com/OpenTraceLab/vhdlwrap/pkg/vhdl"
)

// flatSignal names the internal bus of a flattened port.
func flatSignal(port vhdl.Port) string {
	return port.Name + "_flat"
}

func portClause(port vhdl.Port, plan *flatten.Plan) (string, error) {
	typ := port.TypeClause()
	if plan != nil {
		typ = plan.TypeName()
	}
	return render("portClause", struct {
		Name      string
		Direction string
		Type      string
	}{port.Name, port.Direction.Upper(), typ})
}

func signalDecl(port vhdl.Port, plan flatten.Plan) (string, error) {
	return render("signalDecl", struct {
		Signal string
		High   int
	}{flatSignal(port), plan.Width() - 1})
}

// generateBlock renders the loop copying between the array port and its bus.
// Element i occupies bus bits i*bits+bits-1 downto i*bits.
func generateBlock(port vhdl.Port, plan flatten.Plan, indent string) (string, error) {
	in := port.Direction.IsIn()
	label := "gen_" + port.Name + "_unflatten"
	if in {
		label = "gen_" + port.Name + "_flatten"
	}

	bits := plan.BitsPerInstance
	return render("generateBlock", struct {
		In      bool
		Port    string
		Signal  string
		Label   string
		Last    int
		Slice   string
		Element string
		Indent  string
	}{
		In:      in,
		Port:    port.Name,
		Signal:  flatSignal(port),
		Label:   label,
		Last:    plan.Instances - 1,
		Slice:   fmt.Sprintf("i*%d + %d downto i*%d", bits, bits-1, bits),
		Element: fmt.Sprintf("%d downto 0", bits-1),
		Indent:  indent,
	})
}

func portMapEntry(port vhdl.Port, plan *flatten.Plan) (string, error) {
	actual := port.Name
	if plan != nil {
		actual = flatSignal(port)
	}
	return render("portMapEntry", struct {
		Formal string
		Actual string
	}{port.Name, actual})
}
