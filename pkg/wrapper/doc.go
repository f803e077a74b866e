// Package wrapper generates a VHDL wrapper entity that exposes selected
// std_logic_vector ports of an existing entity as arrays of vectors.
//
// For every flattened port the wrapper declares the port with a custom array
// type, an internal "<name>_flat" bus, and a generate loop that copies each
// array element into (input ports) or out of (output ports) its slice of the
// bus. The original entity is instantiated with the flat buses in its port
// map. The array types are emitted as a separate package unit.
//
// Each syntactic unit (port clause, signal declaration, generate block, port
// map entry, type declaration) is a named text/template, so the units stay
// consistently indented and can be checked in isolation.
package wrapper
