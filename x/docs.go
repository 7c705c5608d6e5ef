/*
Package x contains the extension points shared by the vault engine
extensions.

Extensions implement common functionality (Handler, Decorator, etc.)
and can be combined together to construct the custody application.
Package x itself holds only the glue that every extension needs, most
importantly the Authenticator abstraction that reveals who authorized
the transaction being processed.
*/
package x
