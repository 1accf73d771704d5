package cli

func regCommands() {
	//Block
	blockCmd.AddCommand(block_heightCmd)
	blockCmd.AddCommand(block_hashCmd)

	//Root
	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(signCmd)
	rootCmd.AddCommand(challengeCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(blockCmd)
	rootCmd.AddCommand(starsCmd)
	rootCmd.AddCommand(chainCmd)
	rootCmd.AddCommand(validateCmd)
}
