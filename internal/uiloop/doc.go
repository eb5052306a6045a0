// Package uiloop provides the single goroutine that plays the role of a UI
// thread: every controller method and every view or navigator call runs on
// it, one at a time, in posting order.
//
// Background work (network calls) runs elsewhere and posts its completion
// back with Post.
package uiloop
