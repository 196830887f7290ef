package solana

var (
	BubblegumProgramID          = MustParsePubkey("BGUMAp9Gq7iTEuizy4pqaxsTyUCBK68MDfK752saRPUY")
	NoopProgramID               = MustParsePubkey("noopb9bkMVfRPU8AsbpTUg8AQkHtKwMYZiFUjNRtMmV")
	AccountCompressionProgramID = MustParsePubkey("cmtDvXumGCrqC1Age74AVPhSRVXJMd8PJS91L8KbNCK")
	TokenMetadataProgramID      = MustParsePubkey("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")
	SystemProgramID             = ZeroPubkey
)
