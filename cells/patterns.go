package cells

// Well-known seed patterns, centered in the square. Handy defaults for tests
// and front ends.

func Block() Square   { return FromPattern("$$$...**...$...**...$$$$") }
func Beehive() Square { return FromPattern("$$$...**$..*..*$...**$$$") }
func Loaf() Square    { return FromPattern("$$...**$..*..*$...*.*$....*$$$") }
func Boat() Square    { return FromPattern("$$$..**$..*.*$...*$$$") }
func Tub() Square     { return FromPattern("$$$...*$..*.*$...*$$$") }
func Blinker() Square { return FromPattern("$$.***$$$$$$") }
func Toad() Square    { return FromPattern("$$$...***$..***$$$$") }
func Beacon() Square  { return FromPattern("$$..**$..**$....**$....**$$$") }
func Glider() Square  { return FromPattern("$$...*$..*$..***$$$$") }
func Filled() Square  { return Square(0xffffffffffffffff) }
