package wrapper

import (
	"strings"
	"testing"

	"github.com/OpenTraceLab/vhdlwrap/pkg/flatten"
	"github.com/OpenTraceLab/vhdlwrap/pkg/vhdl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adderEntity() vhdl.Entity {
	return vhdl.Entity{
		Name: "adder",
		Ports: []vhdl.Port{
			{Name: "a", Direction: "in", Type: "std_logic_vector", Range: "7 downto 0"},
			{Name: "b", Direction: "in", Type: "std_logic_vector", Range: "7 downto 0"},
			{Name: "sum", Direction: "out", Type: "std_logic_vector", Range: "8 downto 0"},
		},
	}
}

func lanesEntity() vhdl.Entity {
	return vhdl.Entity{
		Name: "lanes",
		Ports: []vhdl.Port{
			{Name: "clk", Direction: "in", Type: "std_logic"},
			{Name: "data", Direction: "in", Type: "std_logic_vector", Range: "31 downto 0"},
			{Name: "result", Direction: "out", Type: "std_logic_vector", Range: "31 downto 0"},
			{Name: "flags", Direction: "OUT", Type: "std_logic_vector", Range: "5 downto 0"},
		},
	}
}

const adderWrapper = `library ieee;
use ieee.std_logic_1164.all;
use work.adder_types_pkg.all;

entity adder_wrapper is
    port (
        a : IN std_logic_vector(7 downto 0);
        b : IN std_logic_vector(7 downto 0);
        sum : OUT std_logic_vector(8 downto 0)
    );
end adder_wrapper;

architecture Behavioral of adder_wrapper is
begin
    adder_inst: entity work.adder
        port map (
            a => a,
            b => b,
            sum => sum
        );
end Behavioral;
`

const adderPackage = `library ieee;
use ieee.std_logic_1164.all;

package adder_types_pkg is
end package adder_types_pkg;
`

const lanesWrapper = `library ieee;
use ieee.std_logic_1164.all;
use work.lanes_types_pkg.all;

entity lanes_wrapper is
    port (
        clk : IN std_logic;
        data : IN array4x8_t;
        result : OUT array4x8_t;
        flags : OUT array3x2_t
    );
end lanes_wrapper;

architecture Behavioral of lanes_wrapper is
    signal data_flat: std_logic_vector(31 downto 0);
    signal result_flat: std_logic_vector(31 downto 0);
    signal flags_flat: std_logic_vector(5 downto 0);
begin
    -- Flatten input signal data
    gen_data_flatten: for i in 0 to 3 generate
        data_flat(i*8 + 7 downto i*8) <= data(i)(7 downto 0);
    end generate gen_data_flatten;

    -- Unflatten output signal result
    gen_result_unflatten: for i in 0 to 3 generate
        result(i)(7 downto 0) <= result_flat(i*8 + 7 downto i*8);
    end generate gen_result_unflatten;

    -- Unflatten output signal flags
    gen_flags_unflatten: for i in 0 to 2 generate
        flags(i)(1 downto 0) <= flags_flat(i*2 + 1 downto i*2);
    end generate gen_flags_unflatten;

    lanes_inst: entity work.lanes
        port map (
            clk => clk,
            data => data_flat,
            result => result_flat,
            flags => flags_flat
        );
end Behavioral;
`

const lanesPackage = `library ieee;
use ieee.std_logic_1164.all;

package lanes_types_pkg is
    type array4x8_t is array (0 to 3) of std_logic_vector(7 downto 0);
    type array3x2_t is array (0 to 2) of std_logic_vector(1 downto 0);
end package lanes_types_pkg;
`

func TestGeneratePassThrough(t *testing.T) {
	res, err := Generate(adderEntity(), nil)
	require.NoError(t, err)

	assert.Equal(t, adderWrapper, res.Wrapper)
	assert.Equal(t, adderPackage, res.Package)
	assert.Equal(t, "adder_types_pkg", res.PackageName)
	assert.Empty(t, res.Types)
}

func TestGenerateFlattened(t *testing.T) {
	plans := flatten.Plans{
		"data":   {Instances: 4, BitsPerInstance: 8},
		"result": {Instances: 4, BitsPerInstance: 8},
		"flags":  {Instances: 3, BitsPerInstance: 2},
	}

	res, err := Generate(lanesEntity(), plans)
	require.NoError(t, err)

	assert.Equal(t, lanesWrapper, res.Wrapper)
	assert.Equal(t, lanesPackage, res.Package)
	assert.Equal(t, []ArrayType{
		{Name: "array4x8_t", Instances: 4, Bits: 8},
		{Name: "array3x2_t", Instances: 3, Bits: 2},
	}, res.Types)
	assert.Equal(t, 1, strings.Count(res.Package, "type array4x8_t"))
}

func TestGenerateFromParsedEntity(t *testing.T) {
	parser, err := vhdl.NewParser()
	require.NoError(t, err)
	entity, err := parser.ParseString("entity adder is port ( a : in std_logic_vector(7 downto 0); b : in std_logic_vector(7 downto 0); sum : out std_logic_vector(8 downto 0); ); end adder;")
	require.NoError(t, err)

	res, err := Generate(*entity, flatten.Plans{})
	require.NoError(t, err)
	assert.Equal(t, adderWrapper, res.Wrapper)
	assert.Contains(t, res.Wrapper, "a => a,\n            b => b,\n            sum => sum\n")
}

func TestGenerateIsStateless(t *testing.T) {
	gen := New(Options{})
	plans := flatten.Plans{"data": {Instances: 4, BitsPerInstance: 8}}

	first, err := gen.Generate(lanesEntity(), plans)
	require.NoError(t, err)

	_, err = gen.Generate(adderEntity(), nil)
	require.NoError(t, err)

	again, err := gen.Generate(lanesEntity(), plans)
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Len(t, again.Types, 1)
}

func TestGeneratePreservesPortOrder(t *testing.T) {
	plans := flatten.Plans{"result": {Instances: 2, BitsPerInstance: 16}}
	res, err := Generate(lanesEntity(), plans)
	require.NoError(t, err)

	order := []string{"clk : ", "data : ", "result : ", "flags : "}
	mapOrder := []string{"clk => clk", "data => data", "result => result_flat", "flags => flags"}

	last := -1
	for _, s := range order {
		idx := strings.Index(res.Wrapper, s)
		require.Greater(t, idx, last, "port clause %q out of order", s)
		last = idx
	}
	for _, s := range mapOrder {
		idx := strings.Index(res.Wrapper, s)
		require.Greater(t, idx, last, "port map entry %q out of order", s)
		last = idx
	}
}

func TestGenerateUnknownEntity(t *testing.T) {
	entity := vhdl.Entity{
		Name:  vhdl.UnknownEntity,
		Ports: []vhdl.Port{{Name: "x", Direction: "in", Type: "bit"}},
	}

	res, err := Generate(entity, nil)
	require.NoError(t, err)
	assert.Contains(t, res.Wrapper, "entity Unknown_wrapper is")
	assert.Contains(t, res.Wrapper, "Unknown_inst: entity work.Unknown")
}

func TestGeneratePlanErrors(t *testing.T) {
	t.Run("unknown port", func(t *testing.T) {
		_, err := Generate(adderEntity(), flatten.Plans{"carry": {Instances: 1, BitsPerInstance: 1}})
		assert.ErrorIs(t, err, ErrUnknownPort)
	})

	t.Run("invalid plan", func(t *testing.T) {
		_, err := Generate(adderEntity(), flatten.Plans{"a": {Instances: 2, BitsPerInstance: 0}})
		assert.ErrorIs(t, err, flatten.ErrInvalidBitsPerInstance)
	})

	t.Run("inout port", func(t *testing.T) {
		entity := vhdl.Entity{
			Name:  "bidir",
			Ports: []vhdl.Port{{Name: "io", Direction: "inout", Type: "std_logic_vector", Range: "7 downto 0"}},
		}
		_, err := Generate(entity, flatten.Plans{"io": {Instances: 2, BitsPerInstance: 4}})
		assert.ErrorIs(t, err, vhdl.ErrUnsupportedDirection)
	})

	t.Run("flat signal clashes with port", func(t *testing.T) {
		entity := vhdl.Entity{
			Name: "split",
			Ports: []vhdl.Port{
				{Name: "data", Direction: vhdl.DirIn, Type: "std_logic_vector", Range: "15 downto 0"},
				{Name: "DATA_FLAT", Direction: vhdl.DirOut, Type: "std_logic_vector", Range: "15 downto 0"},
			},
		}
		res, err := Generate(entity, flatten.Plans{"data": {Instances: 2, BitsPerInstance: 8}})
		assert.ErrorIs(t, err, ErrNameClash)
		assert.Nil(t, res)

		// Flattening only the port whose own flat name is free still works.
		res, err = Generate(entity, flatten.Plans{"DATA_FLAT": {Instances: 2, BitsPerInstance: 8}})
		require.NoError(t, err)
		assert.Contains(t, res.Wrapper, "signal DATA_FLAT_flat: std_logic_vector(15 downto 0);")
	})
}

func TestGenerateOptions(t *testing.T) {
	gen := New(Options{
		Architecture: "rtl",
		Library:      "lib_core",
		PackageName:  "core_types",
		Indent:       "  ",
	})

	res, err := gen.Generate(adderEntity(), flatten.Plans{"sum": {Instances: 9, BitsPerInstance: 1}})
	require.NoError(t, err)

	assert.Contains(t, res.Wrapper, "use lib_core.core_types.all;")
	assert.Contains(t, res.Wrapper, "architecture rtl of adder_wrapper is\n  signal sum_flat: std_logic_vector(8 downto 0);")
	assert.Contains(t, res.Wrapper, "  adder_inst: entity lib_core.adder\n")
	assert.Contains(t, res.Wrapper, "    sum(i)(0 downto 0) <= sum_flat(i*1 + 0 downto i*1);")
	assert.Contains(t, res.Wrapper, "end rtl;")
	assert.Contains(t, res.Package, "package core_types is\n  type array9x1_t is array (0 to 8) of std_logic_vector(0 downto 0);")
	assert.Equal(t, "core_types", res.PackageName)
}

func TestGeneratePlanKeyCaseInsensitive(t *testing.T) {
	res, err := Generate(lanesEntity(), flatten.Plans{"DATA": {Instances: 4, BitsPerInstance: 8}})
	require.NoError(t, err)
	assert.Contains(t, res.Wrapper, "data : IN array4x8_t")
}
