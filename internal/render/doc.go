// Package render formats recommendations and search results for
// human consumption. PromptBlock produces the deterministic plain-text
// block inserted into generation prompts; Styled produces the same
// content dressed with lipgloss for interactive terminals; ResultBlock
// lists ranked search hits.
//
// Rendering never mutates its inputs and emits no line for an empty
// optional field.
package render
