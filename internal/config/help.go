package config

// HelpScreen returns the usage text printed by -h
func HelpScreen() string {
	return `Usage: line [options] matchers

Prints the lines from stdinput that are matched by the matchers
e.g. ` + "`line 1`" + ` prints the first line

matchers:
  2      matches the second line
  -2     matches the second from the last line
  ^2     matches lines other than the second
  1..10  matches lines 1 through 10 (the numbers can be negative)
  ^5..10 matches all lines before the fifth and all lines after the tenth

options:
  -l, --line-numbers  show line numbers in output
  -s, --strip         strip leading and tailing whitespace
  -f, --force         do not err when told to print a line number beyond the input
  -c, --chomp         no newlines between lines in the output
  -d, --debug         print the matcher and every line's indexes to stderr
  -t, --tree          with --debug, also print the matcher as a tree
      --tree-format F text (default), compact or json
      --tree-depth N  print at most N levels of the tree
      --tree-kinds    label tree nodes with their kind
  -i, --input FILE    read lines from FILE instead of stdin
      --separator SEP put SEP between the line number and the line (default: tab)
      --config FILE   read settings from FILE instead of .line.kdl / .line.toml
  -v, --version       print the version and build details
  -h, --help          this help screen

examples:
  line 1 22         # prints lines 1 and 22
  line -1           # prints the last line
  line ^1 ^-1       # prints all lines but the first and the last
  line 1..10        # prints lines 1 through 10
  line 5..-5        # prints all lines except the first and last four
  line ^5..10       # prints all lines except 5 through ten
  line 5..10 ^6..8  # prints lines 5, 9, 10
  line 5..10 ^7     # prints lines 5, 6, 8, 9
`
}
