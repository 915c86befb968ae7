// Package report renders a comprehensive risk assessment for humans.
//
// Two renderers exist: a Markdown report writer for the file handed to
// stakeholders, and a terminal summary for immediate feedback after a
// run. Both are pure formatters over an assessment the fusion engine
// produced; neither mutates it.
package report
