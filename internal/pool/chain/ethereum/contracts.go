package ethereum

// tokenABI is the subset of the ERC918 token interface the pool uses.
const tokenABI = `[
	{"type":"function","name":"getChallengeNumber","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"bytes32"}]},
	{"type":"function","name":"getMiningTarget","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"getMiningDifficulty","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"getMiningReward","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"epochCount","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"name":"nonce","type":"uint256"},{"name":"challenge_digest","type":"bytes32"}],"outputs":[{"name":"success","type":"bool"}]},
	{"type":"event","name":"Mint","anonymous":false,"inputs":[
		{"name":"from","type":"address","indexed":true},
		{"name":"reward_amount","type":"uint256","indexed":false},
		{"name":"epochCount","type":"uint256","indexed":false},
		{"name":"newChallengeNumber","type":"bytes32","indexed":false}
	]}
]`

// paymentsABI is the batched transfer contract holding the pool's tokens.
const paymentsABI = `[
	{"type":"function","name":"multisend","stateMutability":"nonpayable","inputs":[
		{"name":"token","type":"address"},
		{"name":"paymentId","type":"bytes32"},
		{"name":"dests","type":"address[]"},
		{"name":"values","type":"uint256[]"}
	],"outputs":[{"name":"","type":"uint256"}]}
]`
