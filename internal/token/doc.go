// Package token defines the lexical token kinds for the hot-reload DSL.
// Invariants:
//   - Token.Text is a string copy of the token's source bytes.
//   - Token.Span matches Text exactly (Begin..End).
//   - The annotation marker is lexed as '@' (Kind: At) + Ident; the reload
//     marker itself ("@reload") is recognized by the validator, not here.
//   - "Promise" is a keyword only because it appears exclusively in the
//     return-type position "Promise<number>"; it carries no other meaning.
package token
