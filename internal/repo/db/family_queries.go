package db

const familyUpsertQ = `
INSERT INTO token_families (
	family_id,
	user_id,
	device_id,
	token_chain,
	current_index,
	is_revoked,
	revoked_reason,
	expires_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (family_id) DO UPDATE SET
	token_chain = EXCLUDED.token_chain,
	current_index = EXCLUDED.current_index,
	is_revoked = token_families.is_revoked OR EXCLUDED.is_revoked,
	revoked_reason = CASE
		WHEN token_families.is_revoked THEN token_families.revoked_reason
		ELSE EXCLUDED.revoked_reason
	END,
	updated_at = now()
`

const familyRevokeQ = `
UPDATE token_families
SET is_revoked = TRUE, revoked_reason = $2, updated_at = now()
WHERE family_id = $1 AND NOT is_revoked
`

const familyRevokeByUserQ = `
UPDATE token_families
SET is_revoked = TRUE, revoked_reason = $2, updated_at = now()
WHERE user_id = $1 AND NOT is_revoked
`

const familyDeleteExpiredQ = `
DELETE FROM token_families
WHERE expires_at < now()
`
