/*
Package lexmach wraps lexmachine lexers as scanner.Tokenizers.

An LMAdapter owns a compiled lexmachine DFA. Token patterns are set up in three
groups: literals (operators, punctuation), keywords, and whatever an init
function adds. Literals and keywords come first, so for matches of equal length
they take precedence over the patterns of init. Every token is registered under
a name and an integer ID; scanners deliver tokens with the name as token type.

The grammar reader of package lr is a client. It recognizes arrows and pipes
as literals and everything else as symbols:

	ids := map[string]int{"->": 1, "|": 2, "SYMBOL": 3}
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`[^ \t\r\n|]+`), lexmach.MakeToken("SYMBOL", ids["SYMBOL"]))
		lexer.Add([]byte(`( |\t|\r)+`), lexmach.Skip)
	}
	lm, err := lexmach.NewLMAdapter(init, []string{"->", "|"}, nil, ids)

Scanners are created per input; compiling the DFA happens once, in NewLMAdapter.

	sc, err := lm.Scanner("A -> T A | lambda")
	for tok := sc.NextToken(); tok.TokType() != cctk.EOF; tok = sc.NextToken() {
		// tok.TokType() is one of "->", "|" or "SYMBOL"
	}

Input no pattern matches is handed to the scanner's error handler (see
SetErrorHandler) and skipped.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
