/*
Package custody implements the role gated heart of the vault: the role
registry, the approval ledger and the two single slot request pipelines
that release pooled funds or change the governance parameters.

Three roles exist. The owner is the sole top level administrator. The
executor finalizes approved requests and may force execution below
quorum once the timelock has elapsed, leaving a permanent override
marker. Signers form the approval pool. An address holds at most one
role at a time.

Every privileged operation is a message. Governance actions (signer set,
threshold and timelock changes) and asset transfers each flow through
their own pipeline: initiate, collect approvals, execute after the
timelock, or delete the open slot. At most one unexecuted request per
pipeline exists at any time.

The owner seat can be taken over by the executor through a separate two
phase, timelocked succession protocol.
*/
package custody
