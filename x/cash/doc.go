/*
Package cash defines a simple ledger of accounts, used by the custody
engine to hold and move assets.

Each account is a wallet with a set of coins, keyed by address. Wallets
are funded through deposits. A deposit made on behalf of another account
requires a matching allowance, granted beforehand by the account owner.
Moving coins between accounts is exposed to other extensions through the
Controller and never directly as a message route.
*/
package cash
