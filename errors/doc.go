/*
Package errors implements custom error interfaces for the vault.

Error declarations should be generic and cover broad range of cases. Each
returned error instance can wrap a generic error declaration to add context
information. Each error is registered with a unique classification code that
can be safely returned to the caller.
*/
package errors
