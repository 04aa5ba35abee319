// Package shader holds the WebGL2 (ESSL 300) source of the lit-solid program. The
// renderer translates it to desktop GLSL before compiling.
package shader

// Uniform and attribute names as written in the sources below. The translator
// renames them; look up the mapped names through its variable map.
const (
	AttribPosition = "in_position"
	AttribNormal   = "in_normal"

	UniformModel      = "u_model"
	UniformView       = "u_view"
	UniformProjection = "u_projection"

	UniformLightPosition = "u_lightPosition"
	UniformLightDiffuse  = "u_lightDiffuse"
	UniformLightAmbient  = "u_lightAmbient"
	UniformSceneAmbient  = "u_sceneAmbient"
	UniformReflectance   = "u_reflectance"
	UniformColor         = "u_color"
	UniformLighting      = "u_lighting"
)

// ───────────────────────────────── Vertex stage ─────────────────────────────────

const vertexShaderSource = `#version 300 es
precision highp float;

layout (location = 0) in vec3 in_position;
layout (location = 1) in vec3 in_normal;

uniform mat4 u_model;
uniform mat4 u_view;
uniform mat4 u_projection;

out vec3 v_eyePosition;
out vec3 v_eyeNormal;

void main() {
    mat4 modelView = u_view * u_model;
    vec4 eye = modelView * vec4(in_position, 1.0);
    v_eyePosition = eye.xyz;
    // modelView is rigid (rotation + translation), so its upper 3x3 is the normal matrix
    v_eyeNormal = mat3(modelView) * in_normal;
    gl_Position = u_projection * eye;
}
`

// ──────────────────────────────── Fragment stage ────────────────────────────────

// Per-fragment Lambert term with a single light. Light position is in eye space;
// w == 0 means a directional light.
const fragmentShaderSource = `#version 300 es
precision highp float;
precision highp int;

uniform vec4 u_lightPosition;
uniform vec3 u_lightDiffuse;
uniform vec3 u_lightAmbient;
uniform vec3 u_sceneAmbient;
uniform vec4 u_reflectance;
uniform vec4 u_color;
uniform int  u_lighting;

in vec3 v_eyePosition;
in vec3 v_eyeNormal;

out vec4 fragColor;

void main() {
    if (u_lighting == 0) {
        fragColor = u_color;
        return;
    }

    vec3 n = normalize(v_eyeNormal);
    vec3 l = u_lightPosition.w == 0.0
        ? normalize(u_lightPosition.xyz)
        : normalize(u_lightPosition.xyz - v_eyePosition * u_lightPosition.w);
    float ndotl = max(dot(n, l), 0.0);

    vec3 rgb = (u_sceneAmbient + u_lightAmbient + ndotl * u_lightDiffuse) * u_reflectance.rgb;
    fragColor = vec4(clamp(rgb, 0.0, 1.0), u_reflectance.a);
}
`

// ────────────────────────────────── Public API ──────────────────────────────────

func GenerateVertexShader() string {
	return vertexShaderSource
}

func GetFragmentShader() string {
	return fragmentShaderSource
}
