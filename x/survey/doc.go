/*

Package survey implements paid surveys.

A form owner funds a pool held by the form custodian. Every distinct respondent
that answers the form is paid a fixed amount out of that pool. A respondent can
answer each form only once.

A submission is accepted as follows:
1. The custodian must hold at least a single payout worth of funds.
2. The remaining form budget must cover a single payout.
3. The submission is recorded and the form submission counter is incremented.
4. The payout is moved from the custodian to the respondent in a single
   transfer. The transfer either completes or leaves no trace.
5. On success the remaining form budget is decreased and a payout receipt is
   stored.

When the payout transfer fails, the submission stays recorded and counted while
the budget is left unchanged. The respondent cannot submit again. Such
submissions are listed by the "/surveys/unpaid" query so that they can be
settled out of band.

Amounts are stored as ledger units. One coin of the configured payout ticker is
worth 10^9 units.

*/
package survey
